// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "sekolahku_backend/internals/features/payment/payments/route"
	settingRoute "sekolahku_backend/internals/features/payment/setting/route"
	sppRoute "sekolahku_backend/internals/features/payment/spp/route"
	ppdbRoute "sekolahku_backend/internals/features/ppdb/route"
	referensiRoute "sekolahku_backend/internals/features/school/referensi/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	navigationRoute "sekolahku_backend/internals/features/users/navigation/route"
	navigationService "sekolahku_backend/internals/features/users/navigation/service"
	peopleRoute "sekolahku_backend/internals/features/users/people/route"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/middlewares/guard"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes (PPDB + webhook)...")
	ppdbRoute.PPDBPublicRoutes(app, db)
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ===================== /ms (halaman, guard cookie) =====================
	log.Println("[INFO] Setting up /ms pages with route guard...")
	MsPageRoutes(app, guard.New(guard.Config{
		Permissions: navigationService.NewPermissionSource(db),
	}))

	// ===================== /api (bearer + role) =====================
	log.Println("[INFO] Setting up /api group...")
	navigationRoute.NavigationRoutes(app.Group("/api"), db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting People routes...")
	peopleRoute.PeopleRoutes(api, db)

	log.Println("[INFO] Mounting Referensi routes...")
	referensiRoute.ReferensiRoutes(api, db)

	log.Println("[INFO] Mounting PPDB admin routes...")
	ppdbRoute.PPDBAdminRoutes(api, db)

	log.Println("[INFO] Mounting SPP routes...")
	sppRoute.SppRoutes(api, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(api, db)
	settingRoute.PaymentSettingRoutes(api, db)
}
