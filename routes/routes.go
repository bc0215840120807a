package routes

import (
	"github.com/gin-gonic/gin"

	"optiroute/auth"
	"optiroute/db"
	"optiroute/geocode"
	"optiroute/handlers"
	"optiroute/insights"
	"optiroute/middleware"
	"optiroute/mlmodel"
	"optiroute/nlp"
	"optiroute/types"
)

// Deps carries everything the route tree needs. Optional clients
// (geocoder, extractor) may be nil; the handlers degrade accordingly.
type Deps struct {
	Store      *db.Store
	Operations db.OperationRepo
	Volunteers db.VolunteerRepo
	JWT        *auth.JWTManager
	Generator  *insights.Generator
	Predictor  *mlmodel.Client
	Geocoder   *geocode.Geocoder
	Extractor  *nlp.Extractor
	Limiter    *middleware.RateLimiter
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(d.Limiter.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to OptiRoute!",
		})
	})

	api := r.Group("/api/optiroute")

	// Public auth routes.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", func(c *gin.Context) { handlers.Signup(c, d.Store, d.JWT) })
		authGroup.POST("/login", func(c *gin.Context) { handlers.Login(c, d.Store, d.JWT) })
		authGroup.POST("/refresh", func(c *gin.Context) { handlers.Refresh(c, d.Store, d.JWT) })
	}

	// Everything below requires a session.
	authed := api.Group("")
	authed.Use(middleware.Authenticate(d.JWT, d.Store))

	authed.GET("/auth/me", handlers.Me)
	authed.PUT("/auth/profile", func(c *gin.Context) { handlers.UpdateRoleProfile(c, d.Store) })

	hospital := authed.Group("/hospital")
	{
		hospital.GET("/hospitals", func(c *gin.Context) { handlers.ListHospitals(c, d.Store) })
		hospital.GET("/hospitals/:id", func(c *gin.Context) { handlers.GetHospital(c, d.Store) })
		hospital.GET("/doctors", func(c *gin.Context) { handlers.ListDoctors(c, d.Store) })
		hospital.GET("/doctors/:id", func(c *gin.Context) { handlers.GetDoctor(c, d.Store) })
		hospital.GET("/patients", func(c *gin.Context) { handlers.ListPatients(c, d.Store) })
		hospital.GET("/stats", func(c *gin.Context) { handlers.HospitalStats(c, d.Store) })
		hospital.POST("/find", func(c *gin.Context) { handlers.FindHospitals(c, d.Store) })
		hospital.POST("/find-intelligent", func(c *gin.Context) { handlers.FindHospitalsIntelligent(c, d.Store, d.Generator) })

		admin := hospital.Group("")
		admin.Use(middleware.RequireRole(types.RoleHospitalAdmin, types.RoleAdmin))
		{
			admin.POST("/hospitals", func(c *gin.Context) { handlers.CreateHospital(c, d.Store, d.Geocoder) })
			admin.PUT("/hospitals/:id", func(c *gin.Context) { handlers.UpdateHospital(c, d.Store) })
			admin.DELETE("/hospitals/:id", func(c *gin.Context) { handlers.DeleteHospital(c, d.Store) })
			admin.POST("/doctors", func(c *gin.Context) { handlers.CreateDoctor(c, d.Store) })
			admin.PUT("/doctors/:id", func(c *gin.Context) { handlers.UpdateDoctor(c, d.Store) })
			admin.DELETE("/doctors/:id", func(c *gin.Context) { handlers.DeleteDoctor(c, d.Store) })
		}
	}

	waste := authed.Group("/waste-optimizer")
	{
		waste.GET("/inventory", func(c *gin.Context) { handlers.ListInventory(c, d.Store) })
		waste.GET("/demand", func(c *gin.Context) { handlers.ListDemands(c, d.Store) })
		waste.GET("/logistics", func(c *gin.Context) { handlers.ListPartners(c, d.Store) })
		waste.GET("/storage", func(c *gin.Context) { handlers.ListStorageSites(c, d.Store) })
		waste.GET("/farmers", func(c *gin.Context) { handlers.ListFarmers(c, d.Store) })
		waste.GET("/stats", func(c *gin.Context) { handlers.WasteStats(c, d.Store) })

		writer := waste.Group("")
		writer.Use(middleware.RequireRole(types.RoleFarmer, types.RoleWarehouse, types.RoleLogistics, types.RoleAdmin))
		{
			writer.POST("/inventory", func(c *gin.Context) { handlers.CreateInventoryItem(c, d.Store) })
			writer.POST("/demand", func(c *gin.Context) { handlers.CreateDemand(c, d.Store) })
			writer.POST("/logistics", func(c *gin.Context) { handlers.CreatePartner(c, d.Store) })
			writer.POST("/storage", func(c *gin.Context) { handlers.CreateStorageSite(c, d.Store, d.Geocoder) })
			writer.POST("/farmers", func(c *gin.Context) { handlers.CreateFarmer(c, d.Store, d.Geocoder) })
			writer.POST("/plan", func(c *gin.Context) { handlers.GeneratePlan(c, d.Store, d.Generator) })
		}
	}

	shelter := authed.Group("/shelter")
	{
		shelter.POST("/allocate", func(c *gin.Context) { handlers.Allocate(c, d.Store, d.Predictor) })
		shelter.GET("/allocations/:id", func(c *gin.Context) { handlers.GetAllocation(c, d.Store) })
		shelter.GET("/stats", func(c *gin.Context) { handlers.ShelterStats(c, d.Store) })
		shelter.GET("/model-status", func(c *gin.Context) { handlers.ModelStatus(c, d.Predictor) })
		shelter.GET("/test-prediction", func(c *gin.Context) { handlers.TestPrediction(c, d.Predictor) })
	}

	authed.POST("/forecast", func(c *gin.Context) { handlers.Forecast(c, d.Generator, d.Extractor, d.Geocoder) })
	authed.POST("/panels/routing", handlers.RoutingPanel)
	authed.POST("/panels/reallocation", handlers.ReallocationPanel)
	authed.POST("/panels/community-needs", handlers.CommunityNeedsPanel)

	ngo := authed.Group("/ngo")
	ngo.Use(middleware.RequireRole(types.RoleNGO, types.RoleAdmin))
	{
		ngo.POST("/operations", func(c *gin.Context) { handlers.CreateOperation(c, d.Operations) })
		ngo.GET("/operations", func(c *gin.Context) { handlers.ListOperations(c, d.Operations) })
		ngo.GET("/operations/:id", func(c *gin.Context) { handlers.GetOperation(c, d.Operations) })
		ngo.PUT("/operations/:id", func(c *gin.Context) { handlers.UpdateOperation(c, d.Operations) })
		ngo.POST("/volunteers", func(c *gin.Context) { handlers.CreateVolunteer(c, d.Volunteers) })
		ngo.GET("/volunteers", func(c *gin.Context) { handlers.ListVolunteers(c, d.Volunteers) })
		ngo.GET("/volunteers/:id", func(c *gin.Context) { handlers.GetVolunteer(c, d.Volunteers) })
		ngo.PUT("/volunteers/:id", func(c *gin.Context) { handlers.UpdateVolunteer(c, d.Volunteers) })
	}

	return r
}
