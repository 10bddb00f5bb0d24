package storage

import (
	"time"

	"github.com/amadeudias/blog-core/internal/models"
	"github.com/google/uuid"
)

// Seed loads the fixed initial record set: six categories, the author
// singleton, and six articles. It is the only source of initial data.
// Articles get staggered publishedAt timestamps so recency ordering matches
// the order below (newest first).
func (s *Store) Seed() {
	for _, input := range seedCategories() {
		s.CreateCategory(input)
	}
	s.SetAuthor(seedAuthor())

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, input := range seedArticles() {
		ts := now.Add(-time.Duration(i) * 24 * time.Hour)
		article := &models.Article{
			ID:          uuid.New().String(),
			Title:       input.Title,
			Slug:        input.Slug,
			Excerpt:     input.Excerpt,
			Content:     input.Content,
			Category:    input.Category,
			Tags:        append([]string(nil), input.Tags...),
			ReadTime:    input.ReadTime,
			Featured:    input.Featured,
			ImageURL:    input.ImageURL,
			CodePreview: input.CodePreview,
			PublishedAt: ts,
			CreatedAt:   ts,
		}
		s.articles[article.ID] = article
	}
}

func seedCategories() []CategoryInput {
	return []CategoryInput{
		{
			Name:         "DevOps",
			Slug:         "devops",
			Description:  "Automação, CI/CD, infraestrutura como código e melhores práticas de DevOps.",
			Icon:         "fas fa-cogs",
			Color:        "navy",
			ArticleCount: 12,
		},
		{
			Name:         "Kubernetes",
			Slug:         "kubernetes",
			Description:  "Orquestração de containers, deployment strategies e gerenciamento de clusters.",
			Icon:         "fas fa-dharmachakra",
			Color:        "blue",
			ArticleCount: 8,
		},
		{
			Name:         "Security",
			Slug:         "security",
			Description:  "Segurança em cloud, compliance, monitoramento e gestão de vulnerabilidades.",
			Icon:         "fas fa-shield-alt",
			Color:        "red",
			ArticleCount: 10,
		},
		{
			Name:         "AWS",
			Slug:         "aws",
			Description:  "Serviços AWS, arquiteturas cloud-native e otimização de custos.",
			Icon:         "fab fa-aws",
			Color:        "orange",
			ArticleCount: 15,
		},
		{
			Name:         "Cloud",
			Slug:         "cloud",
			Description:  "Estratégias multi-cloud, migração e arquiteturas distribuídas.",
			Icon:         "fas fa-cloud",
			Color:        "green",
			ArticleCount: 9,
		},
		{
			Name:         "FinOps",
			Slug:         "finops",
			Description:  "Otimização de custos cloud, governança financeira e métricas de ROI.",
			Icon:         "fas fa-chart-line",
			Color:        "purple",
			ArticleCount: 6,
		},
	}
}

func seedAuthor() models.Author {
	return models.Author{
		Name:          "Amadeu Dias",
		Title:         "Cloud Architect",
		Bio:           "Sou especialista em Cloud Computing, com foco em AWS, DevOps, infraestrutura como código (Terraform) e modernização de aplicações. Tenho experiência prática com arquitetura de soluções, automação de ambientes, segurança na nuvem, containers (Docker, Kubernetes) e CI/CD. No blog, compartilho experiências reais de projetos, aprendizados em certificações, boas práticas e tutoriais técnicos voltados para profissionais de tecnologia que buscam evoluir na carreira em cloud e DevOps.",
		Location:      "Goiânia - GO",
		Certification: "Solutions Architect AWS",
		ImageURL:      "/src/assets/profile-photo.jpeg",
		LinkedinURL:   "https://www.linkedin.com/in/amadeu-dias-158b8a146/",
		GithubURL:     "https://github.com/amadeudias",
		TwitterURL:    "https://www.instagram.com/amadeudiasaws/",
	}
}

func seedArticles() []ArticleInput {
	return []ArticleInput{
		{
			Title:    "Implementando CI/CD com Jenkins e Docker",
			Slug:     "implementando-cicd-jenkins-docker",
			Excerpt:  "Aprenda a configurar um pipeline completo de CI/CD usando Jenkins e Docker para automatizar seus deployments...",
			Content:  "Conteúdo completo do artigo sobre CI/CD com Jenkins e Docker...",
			Category: "DevOps",
			Tags:     []string{"DevOps", "Jenkins", "Docker", "CI/CD"},
			ReadTime: 5,
			Featured: true,
			ImageURL: "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			CodePreview: `pipeline {
    agent any
    stages {
        stage('Build') {
            steps {
                sh 'docker build -t myapp .'
            }
        }
    }
}`,
		},
		{
			Title:    "Kubernetes: Gerenciamento de Recursos e Autoscaling",
			Slug:     "kubernetes-gerenciamento-recursos-autoscaling",
			Excerpt:  "Domine as estratégias de gerenciamento de recursos no Kubernetes e implemente autoscaling eficiente...",
			Content:  "Conteúdo completo do artigo sobre Kubernetes...",
			Category: "Kubernetes",
			Tags:     []string{"Kubernetes", "Autoscaling", "Resources"},
			ReadTime: 8,
			Featured: true,
			ImageURL: "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			CodePreview: `apiVersion: autoscaling/v2
kind: HorizontalPodAutoscaler
metadata:
  name: php-apache
spec:
  scaleTargetRef:
    apiVersion: apps/v1
    kind: Deployment
    name: php-apache
  minReplicas: 1
  maxReplicas: 10`,
		},
		{
			Title:    "Segurança na AWS: IAM e Compliance",
			Slug:     "seguranca-aws-iam-compliance",
			Excerpt:  "Estratégias essenciais para implementar segurança robusta na AWS com foco em IAM policies e compliance...",
			Content:  "Conteúdo completo do artigo sobre segurança AWS...",
			Category: "Security",
			Tags:     []string{"AWS", "Security", "IAM", "Compliance"},
			ReadTime: 6,
			Featured: true,
			ImageURL: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
			CodePreview: `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Action": "s3:GetObject",
      "Resource": "arn:aws:s3:::mybucket/*"
    }
  ]
}`,
		},
		{
			Title:    "Infraestrutura como Código com Terraform na AWS",
			Slug:     "infraestrutura-codigo-terraform-aws",
			Excerpt:  "Descubra como implementar infraestrutura como código usando Terraform para provisionar recursos AWS de forma eficiente e escalável. Incluindo exemplos práticos de módulos reutilizáveis.",
			Content:  "Conteúdo completo do artigo sobre Terraform...",
			Category: "DevOps",
			Tags:     []string{"DevOps", "Terraform", "AWS", "IaC"},
			ReadTime: 7,
			Featured: false,
			ImageURL: "https://images.unsplash.com/photo-1629904853893-c2c8981a1dc5?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CodePreview: `resource "aws_instance" "web" {
  ami           = "ami-0c55b159cbfafe1d0"
  instance_type = "t3.micro"

  tags = {
    Name = "WebServer"
  }
}`,
		},
		{
			Title:    "Monitoramento Avançado com Prometheus e Grafana",
			Slug:     "monitoramento-avancado-prometheus-grafana",
			Excerpt:  "Implemente um sistema completo de monitoramento para clusters Kubernetes usando Prometheus para coleta de métricas e Grafana para visualização, incluindo alertas customizados.",
			Content:  "Conteúdo completo do artigo sobre monitoramento...",
			Category: "Kubernetes",
			Tags:     []string{"Kubernetes", "Monitoring", "Prometheus", "Grafana"},
			ReadTime: 10,
			Featured: false,
			ImageURL: "https://images.unsplash.com/photo-1551808525-51a94da548ce?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CodePreview: `apiVersion: v1
kind: ServiceMonitor
metadata:
  name: app-monitor
spec:
  selector:
    matchLabels:
      app: my-app`,
		},
		{
			Title:    "Estratégias de Otimização de Custos AWS",
			Slug:     "estrategias-otimizacao-custos-aws",
			Excerpt:  "Reduza seus custos AWS em até 40% com estratégias comprovadas de FinOps. Aprenda sobre Reserved Instances, Spot Instances, rightsizing e governança de recursos.",
			Content:  "Conteúdo completo do artigo sobre FinOps...",
			Category: "FinOps",
			Tags:     []string{"FinOps", "AWS", "Cost Optimization"},
			ReadTime: 12,
			Featured: false,
			ImageURL: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			CodePreview: `# AWS CLI para análise de custos
aws ce get-cost-and-usage \
  --time-period Start=2024-01-01,End=2024-12-31 \
  --granularity MONTHLY \
  --metrics BlendedCost`,
		},
	}
}
