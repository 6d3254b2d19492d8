// Command seed fills the database with demo content for local development.
// It is idempotent: a database that already has projects is left alone.
package main

import (
	"github.com/samber/lo"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
)

func main() {
	cfg := config.GetConfig()
	if err := query.Init(cfg); err != nil {
		klog.Fatalf("Failed to open database: %s", err)
	}
	db := query.DB()
	if err := query.Migrate(db, cfg); err != nil {
		klog.Fatalf("Failed to migrate: %s", err)
	}

	var count int64
	if err := db.Model(&model.Project{}).Count(&count).Error; err != nil {
		klog.Fatalf("Failed to inspect database: %s", err)
	}
	if count > 0 {
		klog.Info("Database already seeded, nothing to do")
		return
	}

	seeds := []any{demoSkills(), demoProjects(), demoTestimonials(), demoExperiences()}
	for _, batch := range seeds {
		if err := db.Create(batch).Error; err != nil {
			klog.Fatalf("Failed to seed: %s", err)
		}
	}

	titles := lo.Map(demoProjects(), func(p model.Project, _ int) string { return p.Title })
	klog.Infof("Seeded demo content, projects: %v", titles)
}

func demoSkills() []model.Skill {
	return []model.Skill{
		{
			Category:     "Frontend Development",
			Description:  "Building responsive, interactive user interfaces with modern frameworks and state management solutions.",
			Technologies: model.LenientStringList{"React", "Next.js", "TypeScript", "Tailwind CSS", "Redux", "GraphQL"},
			Order:        1,
		},
		{
			Category:     "Backend Development",
			Description:  "Designing scalable server architectures and RESTful APIs with robust database management systems.",
			Technologies: model.LenientStringList{"Node.js", "Express", "Python", "Django", "PostgreSQL", "MongoDB"},
			Order:        2,
		},
		{
			Category:     "Cloud & DevOps",
			Description:  "Implementing cloud-native solutions with containerization and automated deployment pipelines.",
			Technologies: model.LenientStringList{"AWS", "Docker", "Kubernetes", "CI/CD", "Terraform", "Jenkins"},
			Order:        3,
		},
	}
}

func demoProjects() []model.Project {
	return []model.Project{
		{
			Title:           "E-Commerce Platform",
			Description:     "A full-stack e-commerce solution with advanced features including real-time inventory management, payment processing, and admin dashboard.",
			LongDescription: ptr.To("Built a comprehensive e-commerce platform serving 10,000+ products with advanced search, filtering, and recommendation systems. Implemented secure payment processing with Stripe integration and real-time order tracking."),
			Technologies:    model.StringList{"React", "Next.js", "Node.js", "PostgreSQL", "Stripe", "AWS"},
			Features: model.StringList{
				"Real-time inventory management",
				"Advanced search and filtering",
				"Secure payment processing",
				"Admin dashboard with analytics",
				"Mobile-responsive design",
				"Order tracking system",
			},
			Category:   "Full-Stack",
			Status:     "Live",
			LiveURL:    ptr.To("https://example-ecommerce.com"),
			GithubURL:  ptr.To("https://github.com/ezedin/ecommerce-platform"),
			IsFeatured: true,
			Order:      1,
		},
		{
			Title:           "Task Management SaaS",
			Description:     "A collaborative project management tool with real-time collaboration, team management, and advanced reporting features.",
			LongDescription: ptr.To("Developed a comprehensive SaaS platform for project management with real-time collaboration features, team management, and detailed analytics. Supports multiple workspaces and integrates with popular tools."),
			Technologies:    model.StringList{"Vue.js", "Express", "Socket.io", "MongoDB", "Redis", "Docker"},
			Features: model.StringList{
				"Real-time collaboration",
				"Team and workspace management",
				"Advanced reporting and analytics",
				"File sharing and storage",
				"Third-party integrations",
				"Mobile applications",
			},
			Category:   "SaaS",
			Status:     "Live",
			LiveURL:    ptr.To("https://example-taskmanager.com"),
			GithubURL:  ptr.To("https://github.com/ezedin/task-management-saas"),
			IsFeatured: true,
			Order:      2,
		},
		{
			Title:           "AI-Powered Analytics Dashboard",
			Description:     "A data visualization platform with machine learning capabilities for business intelligence and predictive analytics.",
			LongDescription: ptr.To("Created an advanced analytics dashboard that processes large datasets and provides insights through machine learning algorithms. Features include predictive analytics, custom reporting, and automated alerts."),
			Technologies:    model.StringList{"React", "Python", "Django", "TensorFlow", "PostgreSQL", "AWS"},
			Features: model.StringList{
				"Machine learning predictions",
				"Custom data visualization",
				"Automated reporting",
				"Real-time data processing",
				"API integrations",
				"Role-based access control",
			},
			Category:   "AI/ML",
			Status:     "In Development",
			LiveURL:    ptr.To("https://example-analytics.com"),
			GithubURL:  ptr.To("https://github.com/ezedin/ai-analytics-dashboard"),
			IsFeatured: true,
			Order:      3,
		},
	}
}

func demoTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			Name:     "Sarah Johnson",
			Role:     "Product Manager",
			Company:  "InnovateX",
			Content:  "Ezedin is an exceptional developer. Their ability to translate complex requirements into elegant, scalable solutions is truly impressive. The attention to detail and commitment to quality made our project a huge success. Highly recommend!",
			Rating:   5,
			Linkedin: ptr.To("https://linkedin.com/in/sarahj"),
			Order:    1,
			IsActive: true,
		},
		{
			Name:     "Michael Chen",
			Role:     "CTO",
			Company:  "GlobalTech",
			Content:  "Working with Ezedin was a game-changer for our startup. Their expertise in full-stack development and cloud infrastructure helped us launch our MVP ahead of schedule with robust performance. A true professional and a pleasure to collaborate with.",
			Rating:   5,
			Linkedin: ptr.To("https://linkedin.com/in/michaelc"),
			Order:    2,
			IsActive: true,
		},
		{
			Name:     "Emily Rodriguez",
			Role:     "Founder & CEO",
			Company:  "CreativeFlow",
			Content:  "Ezedin delivered beyond our expectations. The custom web application they built not only looks fantastic but also performs flawlessly. Their proactive communication and problem-solving skills were invaluable throughout the entire development process.",
			Rating:   5,
			Linkedin: ptr.To("https://linkedin.com/in/emilyr"),
			Order:    3,
			IsActive: true,
		},
	}
}

func demoExperiences() []model.Experience {
	return []model.Experience{
		{
			Title:       "Senior Software Engineer",
			Company:     "MELAVERSE TECHNOLOGIES",
			Location:    "Remote",
			Type:        model.EmploymentFullTime,
			Period:      "2022 - Present",
			Description: "Leading full-stack development and cloud architecture for enterprise clients.",
			Achievements: model.AchievementList{
				{Title: "Microservices Architecture", Description: "Built microservices for 100K+ daily users", Impact: "99.9% uptime"},
				{Title: "Performance Optimization", Description: "Reduced response time by 60%", Impact: "3x faster loads"},
				{Title: "Team Leadership", Description: "Led team of 5 developers in agile practices", Impact: "40% faster delivery"},
				{Title: "CI/CD Implementation", Description: "Built pipelines, reduced deployment time by 80%", Impact: "Zero downtime"},
			},
			Technologies: model.StringList{"React", "Node.js", "AWS", "Docker", "PostgreSQL", "GraphQL"},
			Highlights:   model.StringList{"Leadership", "Architecture", "Performance", "DevOps"},
			Order:        1,
		},
		{
			Title:       "Full-Stack Developer",
			Company:     "MELAVERSE TECHNOLOGIES",
			Location:    "Addis Ababa, Ethiopia",
			Type:        model.EmploymentFullTime,
			Period:      "2021 - 2022",
			Description: "Built and maintained web applications with modern frameworks.",
			Achievements: model.AchievementList{
				{Title: "Scalable Web Apps", Description: "Built apps serving 50K+ users", Impact: "Zero issues"},
				{Title: "API Integration", Description: "Integrated third-party APIs and payments", Impact: "Seamless UX"},
				{Title: "Quality Assurance", Description: "Automated testing with 90% coverage", Impact: "95% fewer bugs"},
				{Title: "UI/UX Collaboration", Description: "Created intuitive interfaces with designers", Impact: "40% more engagement"},
			},
			Technologies: model.StringList{"Vue.js", "Express", "MongoDB", "Heroku", "Jest", "Redis"},
			Highlights:   model.StringList{"Frontend", "Backend", "Testing", "Collaboration"},
			Order:        2,
		},
		{
			Title:       "Software Developer",
			Company:     "JIMMA UNIVERSITY",
			Location:    "Addis Ababa, Ethiopia",
			Type:        model.EmploymentFullTime,
			Period:      "2020 - 2021",
			Description: "Early-stage product development and establishing best practices.",
			Achievements: model.AchievementList{
				{Title: "MVP Development", Description: "Built MVP for fintech app", Impact: "Successful launch"},
				{Title: "Process Establishment", Description: "Set up code review and documentation standards", Impact: "Better code quality"},
				{Title: "Mentorship", Description: "Mentored juniors and conducted interviews", Impact: "Team growth"},
				{Title: "Real-time Features", Description: "Built real-time features with WebSocket", Impact: "Better UX"},
			},
			Technologies: model.StringList{"React", "Python", "Django", "PostgreSQL", "WebSocket", "AWS"},
			Highlights:   model.StringList{"MVP", "Processes", "Mentoring", "Real-time"},
			Order:        3,
		},
		{
			Title:       "Frontend Developer Intern",
			Company:     "EVERGREEN TECHNOLOGIES",
			Location:    "Remote",
			Type:        model.EmploymentInternship,
			Period:      "2019 - 2020",
			Description: "Frontend development and client project delivery.",
			Achievements: model.AchievementList{
				{Title: "Client Projects", Description: "Built 10+ responsive websites", Impact: "100% satisfaction"},
				{Title: "Technology Learning", Description: "Learned modern CSS and JS libraries", Impact: "Skill expansion"},
				{Title: "Client Interaction", Description: "Led client meetings and requirements", Impact: "Better communication"},
				{Title: "Open Source", Description: "Contributed to open-source projects", Impact: "Community involvement"},
			},
			Technologies: model.StringList{"HTML", "CSS", "JavaScript", "Bootstrap", "jQuery", "Git"},
			Highlights:   model.StringList{"Learning", "Client Work", "Open Source", "Growth"},
			Order:        4,
		},
	}
}
