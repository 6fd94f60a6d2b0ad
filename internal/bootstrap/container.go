package bootstrap

import (
	"santripay-be/internal/config"
	"santripay-be/internal/controller"
	"santripay-be/internal/pkg/identity"
	"santripay-be/internal/pkg/logger"
	"santripay-be/internal/pkg/serverutils"
	"santripay-be/internal/repository/unitofwork"
	"santripay-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// activityTopic carries tenant activity entries from the finance flows to the
// transaction feed writer.
const activityTopic = "pesantren.activity"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	PlatformController     controller.IPlatformController
	WithdrawalController   controller.IWithdrawalController
	FinanceController      controller.IFinanceController
	SantriController       controller.ISantriController
	MasterDataController   controller.IMasterDataController
	UstadzController       controller.IUstadzController
	TagihanController      controller.ITagihanController
	MonetizationController controller.IMonetizationController
	ContentController      controller.IContentController
	AdsController          controller.IAdsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// The middleware must verify with the same secret the provider signs
	// with, including the configured fallback.
	serverutils.SetJWTSecret(cfg.Auth.JWTSecret)
	identityProvider := identity.NewLocalProvider(uowFactory, cfg.Auth.JWTSecret, cfg.TokenTTL())

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	publisherService := service.NewPublisherService(activityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		activityTopic,
		uowFactory,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, identityProvider, sysLogger)
	platformService := service.NewPlatformService(uowFactory, sysLogger)
	financeService := service.NewFinanceService(uowFactory, publisherService, sysLogger)

	santriService := service.NewSantriService(uowFactory)
	masterDataService := service.NewMasterDataService(uowFactory)
	ustadzService := service.NewUstadzService(
		uowFactory,
		identityProvider,
		cfg.Auth.DefaultPassword,
		sysLogger,
	)
	tagihanService := service.NewTagihanService(uowFactory)

	monetizationService := service.NewMonetizationService(uowFactory)
	contentService := service.NewContentService(uowFactory)
	adsService := service.NewAdsService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		PlatformController:     controller.NewPlatformController(platformService),
		WithdrawalController:   controller.NewWithdrawalController(financeService),
		FinanceController:      controller.NewFinanceController(financeService),
		SantriController:       controller.NewSantriController(santriService),
		MasterDataController:   controller.NewMasterDataController(masterDataService),
		UstadzController:       controller.NewUstadzController(ustadzService),
		TagihanController:      controller.NewTagihanController(tagihanService),
		MonetizationController: controller.NewMonetizationController(monetizationService),
		ContentController:      controller.NewContentController(contentService),
		AdsController:          controller.NewAdsController(adsService),

		ConsumerService: consumerService,
	}
}
