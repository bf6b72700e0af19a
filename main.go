package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/dilshat/zalo-sender/auth"
	"github.com/dilshat/zalo-sender/config"
	"github.com/dilshat/zalo-sender/controller"
	"github.com/dilshat/zalo-sender/dao"
	_ "github.com/dilshat/zalo-sender/docs"
	"github.com/dilshat/zalo-sender/log"
	"github.com/dilshat/zalo-sender/sender"
	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/util"
	"github.com/dilshat/zalo-sender/zalo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// @title Zalo sender HTTP API
// @description Bulk Zalo messaging: templates, recipients, credentials and paced send jobs

// @contact.name Dilshat Aliev
// @contact.email dilshat.aliev@gmail.com

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const (
	progressBuffer  = 64
	cleanupInterval = time.Hour
)

var envErr error

func init() {
	envErr = godotenv.Load()
}

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideDb,
			provideRedis,
			dao.NewUserDao,
			dao.NewRefreshTokenDao,
			dao.NewCredentialDao,
			dao.NewTemplateDao,
			dao.NewRecipientDao,
			dao.NewFriendRequestDao,
			dao.NewSendLogDao,
			provideGateway,
			provideFlags,
			provideOrchestrator,
			provideProgress,
			provideAuthService,
			service.NewTemplateService,
			service.NewRecipientService,
			service.NewFriendRequestTargetService,
			service.NewCredentialService,
			provideMessagingService,
			provideQrLoginService,
			provideEcho,
		),
		fx.Invoke(bindRoutes, registerLifecycle),
	)

	app.Run()
}

func provideConfig() (*config.Config, error) {
	return config.Load(util.GetEnv("CONFIG_FILE", ""))
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := log.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, err
	}
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.WarnIfErr("Error loading .env", envErr)
	}
	return logger, nil
}

func provideDb(cfg *config.Config) (dao.Db, error) {
	return dao.GetClient(cfg.DB.Path)
}

// provideRedis returns nil when no Redis address is configured.
func provideRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
}

func provideGateway(cfg *config.Config) zalo.Gateway {
	return zalo.NewGateway(cfg.Gateway.BaseURL, cfg.Gateway.Timeout, cfg.Gateway.TPS)
}

func provideFlags(cfg *config.Config, rdb *redis.Client, logger *zap.Logger) sender.Flags {
	if rdb != nil {
		logger.Info("Stop flags kept in redis", zap.String("addr", cfg.Redis.Addr))
		return sender.NewRedisFlags(rdb, cfg.Sender.FlagTTL)
	}
	return sender.NewMemoryFlags(cfg.Sender.FlagTTL)
}

func provideOrchestrator(cfg *config.Config, flags sender.Flags) *sender.Orchestrator {
	return sender.NewOrchestrator(flags, cfg.Sender.Tick, cfg.Sender.Grace)
}

func provideProgress() *sender.Progress {
	return sender.NewProgress(progressBuffer)
}

func provideAuthService(cfg *config.Config, userDao dao.UserDao, tokenDao dao.RefreshTokenDao) service.AuthService {
	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL)
	return service.NewAuthService(userDao, tokenDao, issuer, cfg.Auth.RefreshTTL)
}

type messagingDeps struct {
	fx.In

	Config           *config.Config
	Gateway          zalo.Gateway
	Orchestrator     *sender.Orchestrator
	Progress         *sender.Progress
	CredentialDao    dao.CredentialDao
	TemplateDao      dao.TemplateDao
	RecipientDao     dao.RecipientDao
	FriendRequestDao dao.FriendRequestDao
	SendLogDao       dao.SendLogDao
}

func provideMessagingService(d messagingDeps) service.MessagingService {
	return service.NewMessagingService(d.Gateway, d.Orchestrator, d.Progress, d.CredentialDao, d.TemplateDao,
		d.RecipientDao, d.FriendRequestDao, d.SendLogDao, d.Config.Sender.DefaultDelay)
}

func provideQrLoginService(cfg *config.Config, gateway zalo.Gateway, credentialDao dao.CredentialDao) service.QrLoginService {
	return service.NewQrLoginService(gateway, credentialDao, cfg.QR.SessionTTL, cfg.QR.PollInterval, cfg.QR.UserAgent)
}

func provideEcho(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.HTTP.BodyLimit))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	return e
}

type routes struct {
	fx.In

	Config        *config.Config
	Auth          service.AuthService
	Templates     service.TemplateService
	Recipients    service.RecipientService
	FriendTargets service.FriendRequestTargetService
	Credentials   service.CredentialService
	Messaging     service.MessagingService
	QrLogin       service.QrLoginService
}

func bindRoutes(e *echo.Echo, r routes) {
	if r.Config.HTTP.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	e.GET("/health", controller.GetHealthFunc())

	e.POST("/auth/register", controller.GetRegisterFunc(r.Auth))
	e.POST("/auth/login", controller.GetLoginFunc(r.Auth))
	e.POST("/auth/refresh", controller.GetRefreshFunc(r.Auth))

	authed := controller.GetAuthMiddleware(r.Auth)

	e.POST("/auth/logout", controller.GetLogoutFunc(r.Auth), authed)
	e.GET("/auth/me", controller.GetMeFunc(r.Auth), authed)

	e.GET("/templates", controller.GetListTemplatesFunc(r.Templates), authed)
	e.POST("/templates", controller.GetCreateTemplateFunc(r.Templates), authed)
	e.PUT("/templates", controller.GetUpdateTemplateFunc(r.Templates), authed)
	e.DELETE("/templates", controller.GetDeleteTemplateFunc(r.Templates), authed)
	e.POST("/templates/preview", controller.GetPreviewTemplateFunc(r.Templates), authed)
	e.GET("/templates/:id", controller.GetTemplateFunc(r.Templates), authed)

	e.GET("/recipients", controller.GetListRecipientsFunc(r.Recipients), authed)
	e.POST("/recipients", controller.GetUpsertRecipientsFunc(r.Recipients), authed)
	e.PUT("/recipients", controller.GetUpdateRecipientFunc(r.Recipients), authed)
	e.DELETE("/recipients", controller.GetDeleteRecipientFunc(r.Recipients), authed)

	e.GET("/friend-requests", controller.GetListFriendRequestsFunc(r.FriendTargets), authed)
	e.POST("/friend-requests", controller.GetAddFriendRequestsFunc(r.FriendTargets), authed)
	e.DELETE("/friend-requests", controller.GetRemoveFriendRequestFunc(r.FriendTargets), authed)

	e.GET("/credentials", controller.GetListCredentialsFunc(r.Credentials), authed)
	e.POST("/credentials", controller.GetCreateCredentialFunc(r.Credentials), authed)
	e.PUT("/credentials", controller.GetUpdateCredentialFunc(r.Credentials), authed)
	e.DELETE("/credentials", controller.GetDeleteCredentialFunc(r.Credentials), authed)
	e.POST("/credentials/:id/activate", controller.GetActivateCredentialFunc(r.Credentials), authed)

	e.POST("/messaging/send", controller.GetSendFunc(r.Messaging), authed)
	e.POST("/messaging/send-friend-request", controller.GetSendFriendRequestsFunc(r.Messaging), authed)
	e.POST("/messaging/stop", controller.GetStopFunc(r.Messaging), authed)
	e.POST("/messaging/find-contact", controller.GetFindContactFunc(r.Messaging), authed)
	e.GET("/messaging/friends", controller.GetFriendsFunc(r.Messaging), authed)
	e.GET("/messaging/groups", controller.GetGroupsFunc(r.Messaging), authed)
	e.GET("/messaging/logs", controller.GetLogsFunc(r.Messaging), authed)
	e.GET("/messaging/progress/:sessionId", controller.GetProgressFunc(r.Messaging), authed)

	e.POST("/qr-login", controller.GetStartQrLoginFunc(r.QrLogin), authed)
	e.GET("/qr-login", controller.GetQrLoginStatusFunc(r.QrLogin), authed)
}

type lifecycleDeps struct {
	fx.In

	Config     *config.Config
	Echo       *echo.Echo
	Db         dao.Db
	Redis      *redis.Client
	Progress   *sender.Progress
	QrLogin    service.QrLoginService
	SendLogDao dao.SendLogDao
	TokenDao   dao.RefreshTokenDao
	Logger     *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, d lifecycleDeps) {
	background, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go service.CleanupDb(background, d.SendLogDao, d.TokenDao, d.Config.DB.LogStoreDays, cleanupInterval)
			go service.RunQrSweeper(background, d.QrLogin, d.Config.QR.SessionTTL)

			go func() {
				addr := ":" + d.Config.HTTP.Port
				d.Logger.Info("HTTP server started", zap.String("addr", addr))
				if err := d.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			log.WarnIfErr("Error stopping HTTP server", d.Echo.Shutdown(ctx))
			d.QrLogin.Close()
			d.Progress.Shutdown()
			if d.Redis != nil {
				log.WarnIfErr("Error closing redis client", d.Redis.Close())
			}
			log.WarnIfErr("Error closing db", d.Db.Close())
			_ = d.Logger.Sync()
			return nil
		},
	})
}
