// Package data holds the built-in sample candidates used by the one-click
// import endpoint. All of them are recent graduates or current students,
// matching the internship-platform demo the frontend presents.
package data

import "github.com/candidate-compare/backend/models"

// SampleCandidates returns a fresh copy of the built-in candidate set so
// callers can mutate the result without corrupting the seed data.
func SampleCandidates() []models.Candidate {
	out := make([]models.Candidate, len(sampleCandidates))
	copy(out, sampleCandidates)
	return out
}

var sampleCandidates = []models.Candidate{
	{
		ID: "cand_001",
		Profile: models.Profile{
			Name:     "Sarah Chen",
			Initials: "SC",
			Contact:  models.Contact{Email: "sarah.chen@email.com", Phone: "+64-21-123-4567"},
			Location: models.Location{
				City:             "Auckland",
				Country:          "NZ",
				RemoteFriendly:   true,
				PreferredRegions: []string{"Auckland", "Wellington", "Remote"},
			},
			Links: models.Links{
				GitHub:   "https://github.com/sarahchen",
				LinkedIn: "https://www.linkedin.com/in/sarah-chen-nz/",
			},
			Availability: &models.Availability{StartDate: "2024-02-01", HoursPerWeek: 40},
		},
		Education: []models.Education{
			{
				Institution:        "University of Auckland",
				Degree:             "Bachelor of Software Engineering",
				GraduationDate:     "2023-12",
				GPA:                3.8,
				RelevantCoursework: []string{"Data Structures", "Algorithms", "Web Development", "Database Systems"},
			},
		},
		Experience: []models.Experience{
			{
				Title:          "Frontend Developer Intern",
				Company:        "TechStart NZ",
				Duration:       "3 months",
				DurationMonths: 3,
				StartDate:      "2023-06",
				EndDate:        "2023-09",
				Description:    "Developed responsive web components using React and TypeScript for a fintech startup",
				Technologies:   []string{"React", "TypeScript", "Tailwind CSS", "Git"},
				Achievements: []string{
					"Built 5 reusable UI components reducing development time by 30%",
					"Improved website performance by 25% through code optimization",
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "E-commerce Platform",
				Description:  "Full-stack e-commerce website with payment integration and admin dashboard",
				Duration:     "4 months",
				Technologies: []string{"React", "Node.js", "Express", "MongoDB", "Stripe API", "JWT"},
				GitHubURL:    "https://github.com/sarahchen/ecommerce-platform",
				Highlights: []string{
					"Implemented secure payment processing with Stripe",
					"Built real-time inventory management system",
				},
			},
			{
				Title:        "Task Management App",
				Description:  "Collaborative task management application with real-time updates",
				Duration:     "2 months",
				Technologies: []string{"React", "TypeScript", "Socket.io", "Node.js", "PostgreSQL"},
				GitHubURL:    "https://github.com/sarahchen/task-manager",
			},
			{
				Title:        "University Course Planner",
				Description:  "Academic planning tool for university students to track degree progress",
				Duration:     "3 months",
				Technologies: []string{"Vue.js", "Python", "Flask", "SQLite", "Chart.js"},
				GitHubURL:    "https://github.com/sarahchen/course-planner",
			},
		},
		Skills: models.SkillSet{
			CoreSkills: []models.CoreSkill{
				{Name: "React", SelfRank: 1, Level: 5, Evidence: []string{"E-commerce Platform", "Task Management App"}},
				{Name: "TypeScript", SelfRank: 2, Level: 4, Evidence: []string{"Task Management App", "Frontend Internship"}},
				{Name: "Node.js", SelfRank: 3, Level: 4, Evidence: []string{"E-commerce Platform"}},
				{Name: "JavaScript", SelfRank: 4, Level: 5, Evidence: []string{"Multiple projects"}},
				{Name: "Python", SelfRank: 5, Level: 3, Evidence: []string{"Course Planner"}},
				{Name: "Git", SelfRank: 6, Level: 4, Evidence: []string{"All projects"}},
			},
			SoftSkills: []models.SoftSkill{
				{Name: "Communication", Level: 4},
				{Name: "Teamwork", Level: 5},
				{Name: "Problem Solving", Level: 5},
			},
		},
	},
	{
		ID: "cand_002",
		Profile: models.Profile{
			Name:     "Marcus Johnson",
			Initials: "MJ",
			Contact:  models.Contact{Email: "marcus.j@email.com", Phone: "+64-22-987-6543"},
			Location: models.Location{City: "Wellington", Country: "NZ", RemoteFriendly: false},
			Links:    models.Links{GitHub: "https://github.com/marcusjdev"},
		},
		Education: []models.Education{
			{
				Institution:    "Victoria University of Wellington",
				Degree:         "Master of Computer Science",
				GraduationDate: "2023-06",
				GPA:            3.6,
			},
		},
		Experience: []models.Experience{
			{
				Title:          "Junior Backend Developer",
				Company:        "Kiwibank Digital",
				Duration:       "18 months",
				DurationMonths: 18,
				StartDate:      "2022-07",
				EndDate:        "2023-12",
				Description:    "Maintained payment microservices and internal APIs",
				Technologies:   []string{"Java", "Spring Boot", "PostgreSQL", "Docker"},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Expense Tracker API",
				Description:  "REST API for personal finance tracking with budgeting rules",
				Technologies: []string{"Java", "Spring Boot", "PostgreSQL", "Docker"},
				GitHubURL:    "https://github.com/marcusjdev/expense-tracker",
			},
			{
				Title:        "Chat Service",
				Description:  "WebSocket chat backend with message persistence",
				Technologies: []string{"Go", "Redis", "WebSocket"},
				GitHubURL:    "https://github.com/marcusjdev/chat-service",
			},
		},
		Skills: models.SkillSet{
			CoreSkills: []models.CoreSkill{
				{Name: "Java", SelfRank: 1, Level: 4, Evidence: []string{"Kiwibank Digital", "Expense Tracker API"}},
				{Name: "Spring Boot", SelfRank: 2, Level: 4, Evidence: []string{"Expense Tracker API"}},
				{Name: "SQL", SelfRank: 3, Level: 4, Evidence: []string{"Kiwibank Digital"}},
				{Name: "Docker", SelfRank: 4, Level: 3, Evidence: []string{"Expense Tracker API"}},
				{Name: "Go", SelfRank: 5, Level: 2, Evidence: []string{"Chat Service"}},
			},
		},
	},
	{
		ID: "cand_003",
		Profile: models.Profile{
			Name:     "Priya Sharma",
			Initials: "PS",
			Contact:  models.Contact{Email: "priya.sharma@email.com"},
			Location: models.Location{
				City:             "Auckland",
				Country:          "NZ",
				RemoteFriendly:   true,
				PreferredRegions: []string{"Auckland", "Remote"},
			},
			Links: models.Links{
				GitHub:    "https://github.com/priyacodes",
				Portfolio: "https://priyasharma.dev",
			},
		},
		Education: []models.Education{
			{
				Institution:    "Auckland University of Technology",
				Degree:         "Bachelor of Computer and Information Sciences",
				GraduationDate: "2021-12",
				GPA:            3.9,
			},
		},
		Experience: []models.Experience{
			{
				Title:          "Full Stack Developer",
				Company:        "Trade Me",
				Duration:       "4 years",
				DurationMonths: 48,
				StartDate:      "2020-01",
				Description:    "Built and shipped marketplace features across the React frontend and Node services",
				Technologies:   []string{"React", "TypeScript", "Node.js", "GraphQL", "PostgreSQL"},
				Achievements: []string{
					"Led the listing-search rewrite serving 1M+ daily queries",
					"Mentored two graduate developers",
				},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Recipe Sharing Platform",
				Description:  "Community recipe site with image uploads and ratings",
				Technologies: []string{"React", "TypeScript", "Node.js", "MongoDB", "AWS S3"},
				GitHubURL:    "https://github.com/priyacodes/recipes",
			},
			{
				Title:        "Habit Tracker PWA",
				Description:  "Offline-first progressive web app for habit tracking",
				Technologies: []string{"React", "IndexedDB", "Service Workers"},
			},
			{
				Title:        "GraphQL Boilerplate",
				Description:  "Production-ready GraphQL server template",
				Technologies: []string{"Node.js", "GraphQL", "TypeScript", "Jest"},
				GitHubURL:    "https://github.com/priyacodes/graphql-starter",
			},
			{
				Title:        "Portfolio Site Generator",
				Description:  "Static site generator for developer portfolios",
				Technologies: []string{"Node.js", "Markdown", "CSS"},
			},
		},
		Skills: models.SkillSet{
			CoreSkills: []models.CoreSkill{
				{Name: "React", SelfRank: 1, Level: 5, Evidence: []string{"Trade Me", "Recipe Sharing Platform"}},
				{Name: "TypeScript", SelfRank: 2, Level: 5, Evidence: []string{"Trade Me"}},
				{Name: "Node.js", SelfRank: 3, Level: 5, Evidence: []string{"GraphQL Boilerplate"}},
				{Name: "GraphQL", SelfRank: 4, Level: 4, Evidence: []string{"Trade Me", "GraphQL Boilerplate"}},
				{Name: "CSS", SelfRank: 5, Level: 4, Evidence: []string{"Portfolio Site Generator"}},
				{Name: "PostgreSQL", SelfRank: 6, Level: 3, Evidence: []string{"Trade Me"}},
			},
			SoftSkills: []models.SoftSkill{
				{Name: "Leadership", Level: 4},
				{Name: "Communication", Level: 5},
			},
		},
	},
	{
		ID: "cand_004",
		Profile: models.Profile{
			Name:     "Tom Baker",
			Initials: "TB",
			Contact:  models.Contact{Email: "tom.baker@email.com"},
			Location: models.Location{City: "Christchurch", Country: "NZ"},
			Availability: &models.Availability{
				StartDate:    "2024-03-01",
				HoursPerWeek: 20,
			},
		},
		Education: []models.Education{
			{
				Institution:    "Ara Institute of Canterbury",
				Degree:         "Diploma in Web Development",
				GraduationDate: "2024-06",
			},
		},
		Experience: []models.Experience{},
		Projects: []models.Project{
			{
				Title:        "Local Café Website",
				Description:  "Responsive brochure site built as coursework",
				Technologies: []string{"HTML", "CSS", "JavaScript"},
			},
		},
		Skills: models.SkillSet{
			CoreSkills: []models.CoreSkill{
				{Name: "HTML", SelfRank: 1, Level: 3, Evidence: []string{"Local Café Website"}},
				{Name: "CSS", SelfRank: 2, Level: 3, Evidence: []string{"Local Café Website"}},
				{Name: "JavaScript", SelfRank: 3, Level: 2, Evidence: []string{"Coursework"}},
			},
		},
	},
	{
		ID: "cand_005",
		Profile: models.Profile{
			Name:     "Elena Petrova",
			Initials: "EP",
			Contact:  models.Contact{Email: "elena.petrova@email.com", Phone: "+64-27-555-0101"},
			Location: models.Location{
				City:             "Auckland",
				Country:          "NZ",
				RemoteFriendly:   true,
				PreferredRegions: []string{"Remote"},
			},
			Links: models.Links{
				GitHub:   "https://github.com/elenapetrova",
				LinkedIn: "https://www.linkedin.com/in/elena-petrova-dev/",
			},
		},
		Education: []models.Education{
			{
				Institution:    "University of Otago",
				Degree:         "Bachelor of Science in Computer Science",
				GraduationDate: "2018-12",
				GPA:            3.7,
			},
		},
		Experience: []models.Experience{
			{
				Title:          "Senior Frontend Developer",
				Company:        "Xero",
				Duration:       "5 years 6 months",
				DurationMonths: 66,
				StartDate:      "2018-06",
				Description:    "Owned accounting-dashboard frontend; drove the migration from AngularJS to React",
				Technologies:   []string{"React", "TypeScript", "Redux", "Webpack", "Jest"},
				Achievements: []string{
					"Cut dashboard load time by 40%",
					"Introduced visual regression testing across three teams",
				},
			},
			{
				Title:          "Frontend Developer",
				Company:        "Vend",
				Duration:       "2 years",
				DurationMonths: 24,
				StartDate:      "2016-05",
				EndDate:        "2018-05",
				Technologies:   []string{"JavaScript", "Vue.js", "CSS"},
			},
		},
		Projects: []models.Project{
			{
				Title:        "Component Library",
				Description:  "Open-source React component library with theming support",
				Technologies: []string{"React", "TypeScript", "Storybook", "CSS"},
				GitHubURL:    "https://github.com/elenapetrova/ui-kit",
			},
			{
				Title:        "Budget Visualizer",
				Description:  "D3-based personal finance visualization tool",
				Technologies: []string{"D3.js", "JavaScript", "SVG"},
			},
			{
				Title:        "Design Tokens CLI",
				Description:  "Command-line tool syncing Figma design tokens to CSS variables",
				Technologies: []string{"Node.js", "TypeScript"},
				GitHubURL:    "https://github.com/elenapetrova/tokens-cli",
			},
		},
		Skills: models.SkillSet{
			CoreSkills: []models.CoreSkill{
				{Name: "React", SelfRank: 1, Level: 5, Evidence: []string{"Xero", "Component Library"}},
				{Name: "TypeScript", SelfRank: 2, Level: 5, Evidence: []string{"Xero", "Design Tokens CLI"}},
				{Name: "JavaScript", SelfRank: 3, Level: 5, Evidence: []string{"Vend", "Budget Visualizer"}},
				{Name: "CSS", SelfRank: 4, Level: 5, Evidence: []string{"Component Library"}},
				{Name: "Redux", SelfRank: 5, Level: 4, Evidence: []string{"Xero"}},
				{Name: "Webpack", SelfRank: 6, Level: 4, Evidence: []string{"Xero"}},
				{Name: "Jest", SelfRank: 7, Level: 4, Evidence: []string{"Xero"}},
			},
			SoftSkills: []models.SoftSkill{
				{Name: "Mentoring", Level: 5},
				{Name: "Communication", Level: 4},
			},
		},
	},
}
