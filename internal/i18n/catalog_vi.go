package i18n

var catalogVI = map[string]string{
	// App chrome
	"app.name":      "Elementary",
	"app.tagline":   "Học bảng tuần hoàn ngay trên terminal",
	"home.table":    "BẢNG TUẦN HOÀN",
	"home.quiz":     "TRẮC NGHIỆM",
	"home.history":  "LỊCH SỬ",
	"home.search":   "TÌM KIẾM",
	"home.exit":     "THOÁT",
	"screen.table":   "Bảng Tuần Hoàn",
	"screen.quiz":    "Trắc Nghiệm",
	"screen.history": "Lịch Sử",
	"screen.search":  "Tìm Kiếm",
	"screen.results": "Kết Quả",
	"screen.detail":  "Nguyên Tố",
	"hint.navigate": "Di chuyển",
	"hint.select":   "Chọn",
	"hint.back":     "Quay lại",
	"hint.quit":     "Thoát",
	"hint.submit":   "Trả lời",
	"hint.next":     "Tiếp",
	"hint.start":    "Bắt đầu",
	"hint.toggle":   "Bật/tắt",
	"hint.details":  "Chi tiết",

	// Element detail fields
	"element.number":    "Số hiệu nguyên tử",
	"element.symbol":    "Ký hiệu",
	"element.mass":      "Khối lượng nguyên tử",
	"element.category":  "Phân loại",
	"element.group":     "Nhóm",
	"element.period":    "Chu kỳ",
	"element.state":     "Trạng thái",
	"element.discovery": "Năm phát hiện",
	"element.ancient":   "Được biết từ thời cổ đại",

	// Quiz flow
	"quiz.intro.title":    "Trắc Nghiệm Nguyên Tố",
	"quiz.intro.subtitle": "Kiểm tra kiến thức của bạn về các nguyên tố",
	"quiz.settings.count": "Số câu hỏi",
	"quiz.settings.types": "Loại câu hỏi",
	"quiz.settings.limit": "Giới hạn thời gian",
	"quiz.settings.none":  "không",
	"quiz.type.symbol":    "Ký hiệu",
	"quiz.type.category":  "Phân loại",
	"quiz.type.property":  "Tính chất",
	"quiz.cannotStart":    "Không thể tạo câu hỏi. Hãy kiểm tra cài đặt.",
	"quiz.question":       "Câu %d/%d",
	"quiz.score":          "Điểm",
	"quiz.timeLeft":       "Thời gian còn lại",
	"quiz.correct":        "Chính xác!",
	"quiz.incorrect":      "Chưa đúng",
	"quiz.correctAnswer":  "Đáp án đúng: %s",
	"quiz.timeUp":         "Hết giờ!",
	"quiz.confirmQuit":    "Thoát bài trắc nghiệm? Tiến độ sẽ không được lưu. (y/n)",
	"quiz.saveFailed":     "Không thể lưu điểm: %s",

	// Question templates
	"quiz.q.symbol":   "Ký hiệu hóa học của %s là gì?",
	"quiz.q.category": "%s thuộc phân loại nào?",
	"quiz.q.liquid":   "Nguyên tố nào ở thể lỏng tại nhiệt độ phòng?",
	"quiz.q.recent":   "Nguyên tố nào được phát hiện gần đây nhất?",

	// Results / history
	"results.score":     "Bạn đạt %d trên %d điểm",
	"results.accuracy":  "Độ chính xác",
	"results.time":      "Thời gian",
	"results.best":      "Điểm cao nhất",
	"results.newBest":   "Kỷ lục mới!",
	"history.empty":     "Chưa có bài trắc nghiệm nào. Hãy bắt đầu!",
	"history.best":      "Cao nhất",
	"history.last":      "Gần nhất",
	"history.total":     "Tổng số bài",
	"history.questions": "câu hỏi",

	// Categories (per the original Vietnamese category table)
	"category.alkali-metal":     "Kim Loại Kiềm",
	"category.alkaline-earth":   "Kim Loại Kiềm Thổ",
	"category.transition-metal": "Kim Loại Chuyển Tiếp",
	"category.post-transition":  "Kim Loại Sau Chuyển Tiếp",
	"category.metalloid":        "Á Kim",
	"category.nonmetal":         "Phi Kim",
	"category.noble-gas":        "Khí Hiếm",
	"category.lanthanide":       "Lantan",
	"category.actinide":         "Actini",
	"category.unknown":          "Không Xác Định",

	// States
	"state.solid":   "Rắn",
	"state.liquid":  "Lỏng",
	"state.gas":     "Khí",
	"state.unknown": "Không Xác Định",

	// Search
	"search.prompt":    "Tên, ký hiệu hoặc số hiệu nguyên tử...",
	"search.noResults": "Không tìm thấy nguyên tố nào",
}
