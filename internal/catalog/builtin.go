package catalog

import "skillgap/internal/types"

// Builtin returns the catalog of sample job roles shipped with the tool
func Builtin() *Catalog {
	c, err := New([]types.JobRequirement{
		{
			Title: "Data Scientist",
			Required: []string{
				"Python", "Machine Learning", "Statistics", "Pandas", "NumPy",
				"Scikit-learn", "SQL", "Data Visualization", "Deep Learning",
			},
			Preferred: []string{
				"TensorFlow", "PyTorch", "AWS", "Docker", "Spark",
				"Natural Language Processing", "Computer Vision",
			},
		},
		{
			Title: "Full Stack Developer",
			Required: []string{
				"JavaScript", "React", "Node.js", "HTML", "CSS", "REST API",
				"Git", "SQL", "MongoDB",
			},
			Preferred: []string{
				"TypeScript", "Next.js", "Docker", "AWS", "GraphQL", "Redis", "CI/CD",
			},
		},
		{
			Title: "Machine Learning Engineer",
			Required: []string{
				"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
				"Model Deployment", "Docker", "Git", "Linux",
			},
			Preferred: []string{
				"Kubernetes", "MLOps", "AWS", "FastAPI", "Spark", "Airflow", "CI/CD",
			},
		},
		{
			Title: "Backend Developer",
			Required: []string{
				"Python", "FastAPI", "Django", "REST API", "SQL", "PostgreSQL",
				"Git", "Docker", "Testing",
			},
			Preferred: []string{
				"Redis", "Celery", "Kubernetes", "AWS", "Microservices", "GraphQL",
			},
		},
		{
			Title: "DevOps Engineer",
			Required: []string{
				"Docker", "Kubernetes", "CI/CD", "Linux", "Git", "AWS",
				"Terraform", "Monitoring", "Scripting",
			},
			Preferred: []string{
				"Ansible", "Jenkins", "Prometheus", "Grafana", "Python", "Helm",
			},
		},
	})
	if err != nil {
		panic("catalog: built-in job roles are invalid: " + err.Error())
	}
	return c
}
