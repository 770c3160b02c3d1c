package services

const lessonVideoURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"

func lesson(id, title, duration string) Lesson {
	return Lesson{ID: id, Title: title, Duration: duration, VideoURL: lessonVideoURL}
}

func pdf(id, title string) PDF {
	return PDF{ID: id, Title: title, URL: "#"}
}

var courseCatalog = []CourseModule{
	{
		ID:          "module-1",
		Title:       "AI-Assisted Resume Writing & Optimization",
		Description: "Learn how to leverage AI tools to create compelling resumes that pass ATS systems and attract recruiters.",
		Lessons: []Lesson{
			lesson("l1", "Introduction to AI Resume Tools", "12:30"),
			lesson("l2", "Keyword Optimization with AI", "15:45"),
			lesson("l3", "Formatting & Structure Best Practices", "18:20"),
			lesson("l4", "Tailoring Resume for Different Roles", "14:10"),
		},
		PDFs: []PDF{
			pdf("p1", "Resume Template - Tech Roles"),
			pdf("p2", "ATS Keywords Checklist"),
			pdf("p3", "Resume Action Verbs Guide"),
		},
	},
	{
		ID:          "module-2",
		Title:       "Smart Job Search with AI Tools",
		Description: "Discover how to use AI-powered platforms and tools to find the right job opportunities faster.",
		Lessons: []Lesson{
			lesson("l1", "AI Job Boards & Aggregators", "16:00"),
			lesson("l2", "Using ChatGPT for Job Research", "20:15"),
			lesson("l3", "Company Research with AI", "13:45"),
			lesson("l4", "Tracking Applications with AI Tools", "11:30"),
		},
		PDFs: []PDF{
			pdf("p1", "Top AI Job Platforms List"),
			pdf("p2", "Job Search Strategy Template"),
		},
	},
	{
		ID:          "module-3",
		Title:       "AI-Powered Interview Preparation",
		Description: "Master interview techniques using AI mock interviews, answer generation, and feedback analysis.",
		Lessons: []Lesson{
			lesson("l1", "Common Interview Questions & AI Answers", "19:25"),
			lesson("l2", "Behavioral Interview Prep with AI", "22:10"),
			lesson("l3", "Technical Interview AI Tools", "17:50"),
			lesson("l4", "Mock Interview Platforms", "15:35"),
			lesson("l5", "Post-Interview Follow-up with AI", "10:20"),
		},
		PDFs: []PDF{
			pdf("p1", "150 Interview Questions Bank"),
			pdf("p2", "STAR Method Framework"),
			pdf("p3", "Salary Negotiation Guide"),
		},
	},
	{
		ID:          "module-4",
		Title:       "Networking Automation with AI",
		Description: "Learn to leverage AI for effective networking, outreach, and relationship building.",
		Lessons: []Lesson{
			lesson("l1", "AI-Generated Connection Messages", "14:40"),
			lesson("l2", "Personalization at Scale with AI", "18:55"),
			lesson("l3", "Email Outreach Templates & Tools", "16:15"),
			lesson("l4", "Following Up Like a Pro", "12:30"),
		},
		PDFs: []PDF{
			pdf("p1", "LinkedIn Connection Message Templates"),
			pdf("p2", "Networking Email Scripts"),
		},
	},
	{
		ID:          "module-5",
		Title:       "Personal Branding with AI Content",
		Description: "Build your professional brand using AI-generated content for LinkedIn, blogs, and portfolios.",
		Lessons: []Lesson{
			lesson("l1", "Crafting Your Personal Brand Story", "21:00"),
			lesson("l2", "AI Content Creation for LinkedIn", "19:30"),
			lesson("l3", "Building a Portfolio with AI Tools", "24:15"),
			lesson("l4", "Thought Leadership Content Strategy", "17:45"),
		},
		PDFs: []PDF{
			pdf("p1", "Personal Brand Framework"),
			pdf("p2", "LinkedIn Content Calendar"),
			pdf("p3", "Portfolio Checklist"),
		},
	},
	{
		ID:          "module-6",
		Title:       "AI Productivity Tools for Career Growth",
		Description: "Explore AI productivity tools to enhance efficiency, learning, and professional development.",
		Lessons: []Lesson{
			lesson("l1", "Time Management with AI", "15:20"),
			lesson("l2", "Learning & Upskilling Platforms", "18:45"),
			lesson("l3", "Task Automation for Professionals", "22:30"),
			lesson("l4", "Career Planning with AI Insights", "16:50"),
			lesson("l5", "Future-Proofing Your Career", "20:10"),
		},
		PDFs: []PDF{
			pdf("p1", "Top 50 AI Tools for Professionals"),
			pdf("p2", "Career Development Roadmap"),
		},
	},
}
