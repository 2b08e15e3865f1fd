package persona

// Fixed vocabularies the generator samples from.
var (
	surnames = []string{"Kim", "Lee", "Park", "Choi", "Jung", "Kang", "Cho", "Yoon", "Jang", "Lim"}

	maleGivenNames = []string{
		"Minjun", "Seojun", "Doyun", "Yejun", "Siwoo",
		"Hajun", "Juwon", "Jiho", "Jihu", "Junseo",
	}

	femaleGivenNames = []string{
		"Seoyeon", "Seoyun", "Jiwoo", "Seohyun", "Minseo",
		"Haeun", "Hayun", "Jiyu", "Yunseo", "Chaewon",
	}

	occupations = []string{
		"Startup developer",
		"Marketing manager",
		"Freelance designer",
		"SME team lead",
		"Corporate employee",
		"Student",
		"Small business owner",
		"Consultant",
		"Researcher",
		"Teacher",
	}

	incomeRanges = []string{
		"Under 20M KRW",
		"20M-30M KRW",
		"30M-40M KRW",
		"40M-50M KRW",
		"50M-70M KRW",
		"70M-100M KRW",
		"Over 100M KRW",
	}

	painPointPool = []string{
		"Declining work efficiency",
		"Scattered collaboration tools",
		"Difficult data management",
		"Communication breakdowns",
		"Repetitive manual work",
		"Rising costs",
		"Wasted time",
		"Poor access to information",
		"Difficult quality control",
		"Lack of scalability",
	}

	needPool = []string{
		"Integrated management solution",
		"Automation features",
		"Real-time collaboration",
		"Data analytics",
		"Mobile access",
		"User-friendly interface",
		"Stronger security",
		"Customization options",
		"Reasonable pricing",
		"Fast customer support",
	}
)

// Pick bounds for pain points and needs per persona
const (
	minPicks = 2
	maxPicks = 4
)
