package main

import (
	"context"
	"fmt"

	"github.com/1dhruvsingh/ResumeAI/career/assistant/assistantapi"
	"github.com/1dhruvsingh/ResumeAI/career/assistant/assistantsrv"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription/jobdescriptionapi"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription/jobdescriptioninfra"
	"github.com/1dhruvsingh/ResumeAI/career/jobdescription/jobdescriptionsrv"
	"github.com/1dhruvsingh/ResumeAI/career/resume/resumeapi"
	"github.com/1dhruvsingh/ResumeAI/career/resume/resumeinfra"
	"github.com/1dhruvsingh/ResumeAI/career/resume/resumesrv"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/advisor"
	"github.com/1dhruvsingh/ResumeAI/internal/ai/llm"
	"github.com/1dhruvsingh/ResumeAI/internal/database"
	"github.com/1dhruvsingh/ResumeAI/pkg/config"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/auth/authinfra"
	"github.com/1dhruvsingh/ResumeAI/pkg/iam/user/userinfra"
	"github.com/1dhruvsingh/ResumeAI/pkg/logx"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config     *config.Config
	AuthConfig auth.Config

	// Infrastructure
	DB        *sqlx.DB
	Redis     *redis.Client
	Generator llm.Generator

	// Services
	AuthService           *auth.AuthService
	GoogleOAuth           *auth.GoogleOAuthService
	Advisor               *advisor.Advisor
	ResumeService         *resumesrv.Service
	JobDescriptionService *jobdescriptionsrv.Service
	AssistantService      *assistantsrv.Service

	// API Handlers
	AuthHandlers           *auth.AuthHandlers
	ResumeHandlers         *resumeapi.ResumeHandlers
	JobDescriptionHandlers *jobdescriptionapi.Handlers
	AssistantHandlers      *assistantapi.Handlers

	// Middleware
	AuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	ctx := context.Background()

	// 1. Database Connection
	db, err := database.Connect(c.Config.Database)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	c.DB = db

	if err := database.RunMigrations(ctx, c.DB); err != nil {
		logx.Fatalf("Failed to run migrations: %v", err)
	}

	// 2. Redis Connection (OAuth state only)
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(ctx).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AI provider
	generator, err := newGenerator(ctx, c.Config.AI)
	if err != nil {
		logx.Fatalf("Failed to initialize AI provider: %v", err)
	}
	c.Generator = generator
	logx.Infof("AI provider %s using model %s", c.Config.AI.Provider, c.Config.AI.Model)

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = c.Config.JWT.Secret
	c.AuthConfig.JWT.Issuer = c.Config.JWT.Issuer
	if c.Config.JWT.InsecureDefault {
		logx.Warn("JWT_SECRET_KEY is not set, using default (unsafe for production)")
	}

	c.AuthConfig.OAuth.Google.ClientID = c.Config.Google.ClientID
	c.AuthConfig.OAuth.Google.ClientSecret = c.Config.Google.ClientSecret
	c.AuthConfig.OAuth.Google.RedirectURL = c.Config.Google.RedirectURL
}

func newGenerator(ctx context.Context, cfg config.AIConfig) (llm.Generator, error) {
	switch cfg.Provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			logx.Warn("OPENAI_API_KEY is not set, AI calls will fail")
		}
		return llm.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.Model), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logx.Warn("GEMINI_API_KEY is not set, AI calls will fail")
		}
		return llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	jobDescriptionRepo := jobdescriptioninfra.NewPostgresJobDescriptionRepository(c.DB)

	// --- Infrastructure Services ---
	passwordSvc := authinfra.NewBcryptPasswordService()
	tokenSvc := auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	c.AuthService = auth.NewAuthService(userRepo, passwordSvc, tokenSvc)
	if c.Config.Google.Enabled() {
		stateManager := authinfra.NewRedisStateManager(c.Redis)
		c.GoogleOAuth = auth.NewGoogleOAuthService(c.AuthConfig.OAuth, stateManager)
	} else {
		logx.Info("Google OAuth code flow disabled (GOOGLE_CLIENT_ID/SECRET/REDIRECT_URL not set)")
	}

	c.Advisor = advisor.New(c.Generator)
	c.ResumeService = resumesrv.NewService(resumeRepo)
	c.JobDescriptionService = jobdescriptionsrv.NewService(jobDescriptionRepo, c.Advisor)
	c.AssistantService = assistantsrv.NewService(resumeRepo, jobDescriptionRepo, c.Advisor)

	// --- Handlers ---
	c.AuthHandlers = auth.NewAuthHandlers(c.AuthService, c.GoogleOAuth)
	c.ResumeHandlers = resumeapi.NewResumeHandlers(c.ResumeService)
	c.JobDescriptionHandlers = jobdescriptionapi.NewHandlers(c.JobDescriptionService)
	c.AssistantHandlers = assistantapi.NewHandlers(c.AssistantService)

	// --- Middleware ---
	c.AuthMiddleware = auth.Middleware(c.AuthService)
}
