package i18n

var catalogEN = map[string]string{
	// App chrome
	"app.name":          "Elementary",
	"app.tagline":       "Learn the periodic table from your terminal",
	"home.table":        "PERIODIC TABLE",
	"home.quiz":         "QUIZ",
	"home.history":      "HISTORY",
	"home.search":       "SEARCH",
	"home.exit":         "EXIT",
	"screen.table":      "Periodic Table",
	"screen.quiz":       "Quiz",
	"screen.history":    "History",
	"screen.search":     "Search",
	"screen.results":    "Results",
	"screen.detail":     "Element",
	"hint.navigate":     "Navigate",
	"hint.select":       "Select",
	"hint.back":         "Back",
	"hint.quit":         "Quit",
	"hint.submit":       "Submit",
	"hint.next":         "Next",
	"hint.start":        "Start",
	"hint.toggle":       "Toggle",
	"hint.details":      "Details",

	// Element detail fields
	"element.number":    "Atomic number",
	"element.symbol":    "Symbol",
	"element.mass":      "Atomic mass",
	"element.category":  "Category",
	"element.group":     "Group",
	"element.period":    "Period",
	"element.state":     "State",
	"element.discovery": "Discovered",
	"element.ancient":   "Known since antiquity",

	// Quiz flow
	"quiz.intro.title":     "Element Quiz",
	"quiz.intro.subtitle":  "Test your knowledge of the elements",
	"quiz.settings.count":  "Questions",
	"quiz.settings.types":  "Question types",
	"quiz.settings.limit":  "Time limit",
	"quiz.settings.none":   "none",
	"quiz.type.symbol":     "Symbols",
	"quiz.type.category":   "Categories",
	"quiz.type.property":   "Properties",
	"quiz.cannotStart":     "Could not generate questions. Check your settings.",
	"quiz.question":        "Question %d/%d",
	"quiz.score":           "Score",
	"quiz.timeLeft":        "Time left",
	"quiz.correct":         "Correct!",
	"quiz.incorrect":       "Not quite",
	"quiz.correctAnswer":   "Correct answer: %s",
	"quiz.timeUp":          "Time's up!",
	"quiz.confirmQuit":     "Quit this quiz? Progress is not saved. (y/n)",
	"quiz.saveFailed":      "Score could not be saved: %s",

	// Question templates
	"quiz.q.symbol":   "What is the chemical symbol for %s?",
	"quiz.q.category": "Which category does %s belong to?",
	"quiz.q.liquid":   "Which element is a liquid at room temperature?",
	"quiz.q.recent":   "Which element was discovered most recently?",

	// Results / history
	"results.score":     "You scored %d out of %d",
	"results.accuracy":  "Accuracy",
	"results.time":      "Time spent",
	"results.best":      "Best score",
	"results.newBest":   "New best score!",
	"history.empty":     "No quizzes taken yet. Start one!",
	"history.best":      "Best",
	"history.last":      "Last",
	"history.total":     "Total quizzes",
	"history.questions": "questions",

	// Categories
	"category.alkali-metal":    "Alkali Metal",
	"category.alkaline-earth":  "Alkaline Earth Metal",
	"category.transition-metal": "Transition Metal",
	"category.post-transition": "Post-Transition Metal",
	"category.metalloid":       "Metalloid",
	"category.nonmetal":        "Nonmetal",
	"category.noble-gas":       "Noble Gas",
	"category.lanthanide":      "Lanthanide",
	"category.actinide":        "Actinide",
	"category.unknown":         "Unknown",

	// States
	"state.solid":   "Solid",
	"state.liquid":  "Liquid",
	"state.gas":     "Gas",
	"state.unknown": "Unknown",

	// Search
	"search.prompt":    "Name, symbol or atomic number...",
	"search.noResults": "No elements match",
}
