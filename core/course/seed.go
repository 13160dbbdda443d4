package course

// DefaultCourses is the catalog inserted by Service.Seed when the store is
// empty: eight AI-skills tracks and four academic ones.
var DefaultCourses = []NewCourse{
	{
		Title:       "دورة اعداد مدربين",
		Description: "تأهيل المدربين لتدريس مهارات الذكاء الاصطناعي",
		Category:    CategoryAISkills,
		Duration:    "4 أسابيع",
		Icon:        "graduation-cap",
	},
	{
		Title:       "دورة مهارات الذكاء الاصطناعي للطلاب",
		Description: "تعليم الطلاب أساسيات وتطبيقات الذكاء الاصطناعي",
		Category:    CategoryAISkills,
		Duration:    "6 أسابيع",
		Icon:        "student",
	},
	{
		Title:       "دورة مهارات الذكاء الاصطناعي للمدرسين",
		Description: "تمكين المدرسين من دمج الذكاء الاصطناعي في التعليم",
		Category:    CategoryAISkills,
		Duration:    "5 أسابيع",
		Icon:        "chalkboard-teacher",
	},
	{
		Title:       "دورة مهارات الذكاء الاصطناعي للآباء",
		Description: "مساعدة الآباء على فهم ومراقبة استخدام أطفالهم للذكاء الاصطناعي",
		Category:    CategoryAISkills,
		Duration:    "3 أسابيع",
		Icon:        "heart",
	},
	{
		Title:       "دورة مهارات الذكاء الاصطناعي لصناع المحتوى",
		Description: "استخدام الذكاء الاصطناعي في إنتاج وتحسين المحتوى الرقمي",
		Category:    CategoryAISkills,
		Duration:    "4 أسابيع",
		Icon:        "video",
	},
	{
		Title:       "دورة تصميم شخصية افتراضية",
		Description: "إنشاء وتطوير شخصيات افتراضية ذكية تفاعلية",
		Category:    CategoryAISkills,
		Duration:    "6 أسابيع",
		Icon:        "robot",
	},
	{
		Title:       "دورة مهارات الذكاء الاصطناعي للمبرمجين",
		Description: "تطوير تطبيقات ومشاريع ذكية باستخدام الذكاء الاصطناعي",
		Category:    CategoryAISkills,
		Duration:    "8 أسابيع",
		Icon:        "code",
	},
	{
		Title:       "دورة مهارات الذكاء الاصطناعي للمصممين",
		Description: "استخدام أدوات الذكاء الاصطناعي في التصميم والإبداع البصري",
		Category:    CategoryAISkills,
		Duration:    "5 أسابيع",
		Icon:        "palette",
	},
	{
		Title:       "دورات تقوية لطلاب الصف التاسع",
		Description: "دورات تقوية شاملة لجميع مواد الصف التاسع",
		Category:    CategoryAcademic,
		Duration:    "فصل دراسي",
		Icon:        "book",
	},
	{
		Title:       "دورات متابعة لطلاب الصف التاسع",
		Description: "متابعة مستمرة لطلاب الصف التاسع طوال العام الدراسي",
		Category:    CategoryAcademic,
		Duration:    "سنة دراسية",
		Icon:        "users",
	},
	{
		Title:       "دورات تقوية لطلاب الثالث الثانوي - جميع الفروع",
		Description: "دورات تقوية مكثفة لطلاب الثالث الثانوي في جميع التخصصات",
		Category:    CategoryAcademic,
		Duration:    "فصل دراسي",
		Icon:        "graduation-cap",
	},
	{
		Title:       "دورات متابعة لطلاب الثالث الثانوي - جميع الفروع",
		Description: "متابعة مستمرة لطلاب الثالث الثانوي في جميع التخصصات",
		Category:    CategoryAcademic,
		Duration:    "سنة دراسية",
		Icon:        "users",
	},
}
