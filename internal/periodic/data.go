package periodic

// Elements is the full periodic table, ordered by atomic number.
// Discovery year 0 marks elements known since antiquity; synthetic
// superheavies with unmeasured bulk properties carry StateUnknown.
var Elements = []Element{
	{1, "H", "Hydrogen", 1.008, CategoryNonmetal, 1, 1, StateGas, 1766},
	{2, "He", "Helium", 4.0026, CategoryNobleGas, 18, 1, StateGas, 1868},
	{3, "Li", "Lithium", 6.94, CategoryAlkaliMetal, 1, 2, StateSolid, 1817},
	{4, "Be", "Beryllium", 9.0122, CategoryAlkalineEarth, 2, 2, StateSolid, 1798},
	{5, "B", "Boron", 10.81, CategoryMetalloid, 13, 2, StateSolid, 1808},
	{6, "C", "Carbon", 12.011, CategoryNonmetal, 14, 2, StateSolid, 0},
	{7, "N", "Nitrogen", 14.007, CategoryNonmetal, 15, 2, StateGas, 1772},
	{8, "O", "Oxygen", 15.999, CategoryNonmetal, 16, 2, StateGas, 1774},
	{9, "F", "Fluorine", 18.998, CategoryNonmetal, 17, 2, StateGas, 1886},
	{10, "Ne", "Neon", 20.180, CategoryNobleGas, 18, 2, StateGas, 1898},
	{11, "Na", "Sodium", 22.990, CategoryAlkaliMetal, 1, 3, StateSolid, 1807},
	{12, "Mg", "Magnesium", 24.305, CategoryAlkalineEarth, 2, 3, StateSolid, 1755},
	{13, "Al", "Aluminium", 26.982, CategoryPostTransition, 13, 3, StateSolid, 1825},
	{14, "Si", "Silicon", 28.085, CategoryMetalloid, 14, 3, StateSolid, 1824},
	{15, "P", "Phosphorus", 30.974, CategoryNonmetal, 15, 3, StateSolid, 1669},
	{16, "S", "Sulfur", 32.06, CategoryNonmetal, 16, 3, StateSolid, 0},
	{17, "Cl", "Chlorine", 35.45, CategoryNonmetal, 17, 3, StateGas, 1774},
	{18, "Ar", "Argon", 39.948, CategoryNobleGas, 18, 3, StateGas, 1894},
	{19, "K", "Potassium", 39.098, CategoryAlkaliMetal, 1, 4, StateSolid, 1807},
	{20, "Ca", "Calcium", 40.078, CategoryAlkalineEarth, 2, 4, StateSolid, 1808},
	{21, "Sc", "Scandium", 44.956, CategoryTransition, 3, 4, StateSolid, 1879},
	{22, "Ti", "Titanium", 47.867, CategoryTransition, 4, 4, StateSolid, 1791},
	{23, "V", "Vanadium", 50.942, CategoryTransition, 5, 4, StateSolid, 1801},
	{24, "Cr", "Chromium", 51.996, CategoryTransition, 6, 4, StateSolid, 1797},
	{25, "Mn", "Manganese", 54.938, CategoryTransition, 7, 4, StateSolid, 1774},
	{26, "Fe", "Iron", 55.845, CategoryTransition, 8, 4, StateSolid, 0},
	{27, "Co", "Cobalt", 58.933, CategoryTransition, 9, 4, StateSolid, 1735},
	{28, "Ni", "Nickel", 58.693, CategoryTransition, 10, 4, StateSolid, 1751},
	{29, "Cu", "Copper", 63.546, CategoryTransition, 11, 4, StateSolid, 0},
	{30, "Zn", "Zinc", 65.38, CategoryTransition, 12, 4, StateSolid, 1746},
	{31, "Ga", "Gallium", 69.723, CategoryPostTransition, 13, 4, StateSolid, 1875},
	{32, "Ge", "Germanium", 72.630, CategoryMetalloid, 14, 4, StateSolid, 1886},
	{33, "As", "Arsenic", 74.922, CategoryMetalloid, 15, 4, StateSolid, 1250},
	{34, "Se", "Selenium", 78.971, CategoryNonmetal, 16, 4, StateSolid, 1817},
	{35, "Br", "Bromine", 79.904, CategoryNonmetal, 17, 4, StateLiquid, 1826},
	{36, "Kr", "Krypton", 83.798, CategoryNobleGas, 18, 4, StateGas, 1898},
	{37, "Rb", "Rubidium", 85.468, CategoryAlkaliMetal, 1, 5, StateSolid, 1861},
	{38, "Sr", "Strontium", 87.62, CategoryAlkalineEarth, 2, 5, StateSolid, 1790},
	{39, "Y", "Yttrium", 88.906, CategoryTransition, 3, 5, StateSolid, 1794},
	{40, "Zr", "Zirconium", 91.224, CategoryTransition, 4, 5, StateSolid, 1789},
	{41, "Nb", "Niobium", 92.906, CategoryTransition, 5, 5, StateSolid, 1801},
	{42, "Mo", "Molybdenum", 95.95, CategoryTransition, 6, 5, StateSolid, 1778},
	{43, "Tc", "Technetium", 98, CategoryTransition, 7, 5, StateSolid, 1937},
	{44, "Ru", "Ruthenium", 101.07, CategoryTransition, 8, 5, StateSolid, 1844},
	{45, "Rh", "Rhodium", 102.906, CategoryTransition, 9, 5, StateSolid, 1803},
	{46, "Pd", "Palladium", 106.42, CategoryTransition, 10, 5, StateSolid, 1803},
	{47, "Ag", "Silver", 107.868, CategoryTransition, 11, 5, StateSolid, 0},
	{48, "Cd", "Cadmium", 112.414, CategoryTransition, 12, 5, StateSolid, 1817},
	{49, "In", "Indium", 114.818, CategoryPostTransition, 13, 5, StateSolid, 1863},
	{50, "Sn", "Tin", 118.710, CategoryPostTransition, 14, 5, StateSolid, 0},
	{51, "Sb", "Antimony", 121.760, CategoryMetalloid, 15, 5, StateSolid, 0},
	{52, "Te", "Tellurium", 127.60, CategoryMetalloid, 16, 5, StateSolid, 1782},
	{53, "I", "Iodine", 126.904, CategoryNonmetal, 17, 5, StateSolid, 1811},
	{54, "Xe", "Xenon", 131.293, CategoryNobleGas, 18, 5, StateGas, 1898},
	{55, "Cs", "Caesium", 132.905, CategoryAlkaliMetal, 1, 6, StateSolid, 1860},
	{56, "Ba", "Barium", 137.327, CategoryAlkalineEarth, 2, 6, StateSolid, 1808},
	{57, "La", "Lanthanum", 138.905, CategoryLanthanide, 0, 6, StateSolid, 1839},
	{58, "Ce", "Cerium", 140.116, CategoryLanthanide, 0, 6, StateSolid, 1803},
	{59, "Pr", "Praseodymium", 140.908, CategoryLanthanide, 0, 6, StateSolid, 1885},
	{60, "Nd", "Neodymium", 144.242, CategoryLanthanide, 0, 6, StateSolid, 1885},
	{61, "Pm", "Promethium", 145, CategoryLanthanide, 0, 6, StateSolid, 1945},
	{62, "Sm", "Samarium", 150.36, CategoryLanthanide, 0, 6, StateSolid, 1879},
	{63, "Eu", "Europium", 151.964, CategoryLanthanide, 0, 6, StateSolid, 1901},
	{64, "Gd", "Gadolinium", 157.25, CategoryLanthanide, 0, 6, StateSolid, 1880},
	{65, "Tb", "Terbium", 158.925, CategoryLanthanide, 0, 6, StateSolid, 1843},
	{66, "Dy", "Dysprosium", 162.500, CategoryLanthanide, 0, 6, StateSolid, 1886},
	{67, "Ho", "Holmium", 164.930, CategoryLanthanide, 0, 6, StateSolid, 1878},
	{68, "Er", "Erbium", 167.259, CategoryLanthanide, 0, 6, StateSolid, 1843},
	{69, "Tm", "Thulium", 168.934, CategoryLanthanide, 0, 6, StateSolid, 1879},
	{70, "Yb", "Ytterbium", 173.045, CategoryLanthanide, 0, 6, StateSolid, 1878},
	{71, "Lu", "Lutetium", 174.967, CategoryLanthanide, 0, 6, StateSolid, 1907},
	{72, "Hf", "Hafnium", 178.486, CategoryTransition, 4, 6, StateSolid, 1923},
	{73, "Ta", "Tantalum", 180.948, CategoryTransition, 5, 6, StateSolid, 1802},
	{74, "W", "Tungsten", 183.84, CategoryTransition, 6, 6, StateSolid, 1783},
	{75, "Re", "Rhenium", 186.207, CategoryTransition, 7, 6, StateSolid, 1925},
	{76, "Os", "Osmium", 190.23, CategoryTransition, 8, 6, StateSolid, 1803},
	{77, "Ir", "Iridium", 192.217, CategoryTransition, 9, 6, StateSolid, 1803},
	{78, "Pt", "Platinum", 195.084, CategoryTransition, 10, 6, StateSolid, 1735},
	{79, "Au", "Gold", 196.967, CategoryTransition, 11, 6, StateSolid, 0},
	{80, "Hg", "Mercury", 200.592, CategoryTransition, 12, 6, StateLiquid, 0},
	{81, "Tl", "Thallium", 204.38, CategoryPostTransition, 13, 6, StateSolid, 1861},
	{82, "Pb", "Lead", 207.2, CategoryPostTransition, 14, 6, StateSolid, 0},
	{83, "Bi", "Bismuth", 208.980, CategoryPostTransition, 15, 6, StateSolid, 1753},
	{84, "Po", "Polonium", 209, CategoryPostTransition, 16, 6, StateSolid, 1898},
	{85, "At", "Astatine", 210, CategoryMetalloid, 17, 6, StateSolid, 1940},
	{86, "Rn", "Radon", 222, CategoryNobleGas, 18, 6, StateGas, 1899},
	{87, "Fr", "Francium", 223, CategoryAlkaliMetal, 1, 7, StateSolid, 1939},
	{88, "Ra", "Radium", 226, CategoryAlkalineEarth, 2, 7, StateSolid, 1898},
	{89, "Ac", "Actinium", 227, CategoryActinide, 0, 7, StateSolid, 1899},
	{90, "Th", "Thorium", 232.038, CategoryActinide, 0, 7, StateSolid, 1829},
	{91, "Pa", "Protactinium", 231.036, CategoryActinide, 0, 7, StateSolid, 1913},
	{92, "U", "Uranium", 238.029, CategoryActinide, 0, 7, StateSolid, 1789},
	{93, "Np", "Neptunium", 237, CategoryActinide, 0, 7, StateSolid, 1940},
	{94, "Pu", "Plutonium", 244, CategoryActinide, 0, 7, StateSolid, 1940},
	{95, "Am", "Americium", 243, CategoryActinide, 0, 7, StateSolid, 1944},
	{96, "Cm", "Curium", 247, CategoryActinide, 0, 7, StateSolid, 1944},
	{97, "Bk", "Berkelium", 247, CategoryActinide, 0, 7, StateSolid, 1949},
	{98, "Cf", "Californium", 251, CategoryActinide, 0, 7, StateSolid, 1950},
	{99, "Es", "Einsteinium", 252, CategoryActinide, 0, 7, StateSolid, 1952},
	{100, "Fm", "Fermium", 257, CategoryActinide, 0, 7, StateSolid, 1952},
	{101, "Md", "Mendelevium", 258, CategoryActinide, 0, 7, StateSolid, 1955},
	{102, "No", "Nobelium", 259, CategoryActinide, 0, 7, StateSolid, 1958},
	{103, "Lr", "Lawrencium", 266, CategoryActinide, 0, 7, StateSolid, 1961},
	{104, "Rf", "Rutherfordium", 267, CategoryTransition, 4, 7, StateUnknown, 1964},
	{105, "Db", "Dubnium", 268, CategoryTransition, 5, 7, StateUnknown, 1967},
	{106, "Sg", "Seaborgium", 269, CategoryTransition, 6, 7, StateUnknown, 1974},
	{107, "Bh", "Bohrium", 270, CategoryTransition, 7, 7, StateUnknown, 1981},
	{108, "Hs", "Hassium", 277, CategoryTransition, 8, 7, StateUnknown, 1984},
	{109, "Mt", "Meitnerium", 278, CategoryUnknown, 9, 7, StateUnknown, 1982},
	{110, "Ds", "Darmstadtium", 281, CategoryUnknown, 10, 7, StateUnknown, 1994},
	{111, "Rg", "Roentgenium", 282, CategoryUnknown, 11, 7, StateUnknown, 1994},
	{112, "Cn", "Copernicium", 285, CategoryTransition, 12, 7, StateUnknown, 1996},
	{113, "Nh", "Nihonium", 286, CategoryUnknown, 13, 7, StateUnknown, 2003},
	{114, "Fl", "Flerovium", 289, CategoryPostTransition, 14, 7, StateUnknown, 1999},
	{115, "Mc", "Moscovium", 290, CategoryUnknown, 15, 7, StateUnknown, 2003},
	{116, "Lv", "Livermorium", 293, CategoryUnknown, 16, 7, StateUnknown, 2000},
	{117, "Ts", "Tennessine", 294, CategoryUnknown, 17, 7, StateUnknown, 2010},
	{118, "Og", "Oganesson", 294, CategoryUnknown, 18, 7, StateUnknown, 2002},
}

// ByNumber returns the element with the given atomic number, or nil.
func ByNumber(n int) *Element {
	if n < 1 || n > len(Elements) {
		return nil
	}
	// The pool is ordered and dense, so the index is the number minus one.
	return &Elements[n-1]
}
