package cmd

import (
	"errors"
	"log/slog"

	httpin "dronedelivery/internal/adapters/in/http"
	kafkaout "dronedelivery/internal/adapters/out/kafka"
	"dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/adapters/out/postgres/dronerepo"
	"dronedelivery/internal/adapters/out/postgres/orderrepo"
	redisout "dronedelivery/internal/adapters/out/redis"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/jobs"
	"dronedelivery/internal/tracking"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	publisher   *kafkaout.OrderChangedPublisher
	redisClient *redis.Client

	simulator *jobs.DeliverySimulator
	registry  *tracking.Registry
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   tracking.NewRegistry(),
	}

	if configs.KafkaHost != "" {
		c.publisher = kafkaout.NewOrderChangedPublisher(
			kafkaout.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic),
		)
	} else {
		logger.Info("KAFKA_HOST is not set, order events are not published")
	}

	if configs.RedisAddr != "" {
		c.redisClient = redis.NewClient(&redis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
		})
	} else {
		logger.Info("REDIS_ADDR is not set, payment idempotency keys are not checked")
	}

	// The simulator drives deliveries through its own handlers, which only publish.
	c.simulator = jobs.NewDeliverySimulator(
		c.CreateAdvanceDeliveryCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		configs.SimulationInterval,
		logger,
	)

	return c
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) eventPublisher() ports.EventPublisher {
	if c.publisher == nil {
		return nil
	}
	return c.publisher
}

func (c *CompositionRoot) idempotencyGuard() ports.IdempotencyGuard {
	if c.redisClient == nil {
		return nil
	}
	return redisout.NewIdempotencyGuard(c.redisClient, redisout.DefaultKeyTTL)
}

func (c *CompositionRoot) effects() commands.SideEffects {
	effects := commands.SideEffects{
		Publisher: c.eventPublisher(),
		Logger:    c.logger,
	}
	if c.simulator != nil {
		effects.Scheduler = c.simulator
	}
	return effects
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	return commands.NewMarkOrderDeliveredCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(
		c.uow(), c.effects(), c.CreateMarkOrderDeliveredCommandHandler(),
	)
}

func (c *CompositionRoot) CreateAssignDroneCommandHandler() commands.AssignDroneCommandHandler {
	return commands.NewAssignDroneCommandHandler(c.uow(), c.effects())
}

func (c *CompositionRoot) CreateMockPaymentCommandHandler() commands.MockPaymentCommandHandler {
	return commands.NewMockPaymentCommandHandler(c.uow(), c.idempotencyGuard(), c.effects())
}

func (c *CompositionRoot) CreateCreateDroneCommandHandler() commands.CreateDroneCommandHandler {
	return commands.NewCreateDroneCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAttachDroneToRestaurantCommandHandler() commands.AttachDroneToRestaurantCommandHandler {
	return commands.NewAttachDroneToRestaurantCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSetDroneStatusCommandHandler() commands.SetDroneStatusCommandHandler {
	return commands.NewSetDroneStatusCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	return commands.NewRegisterRestaurantCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	return commands.NewAdvanceDeliveryCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.uow(), commands.SideEffects{
		Publisher: c.eventPublisher(),
		Logger:    c.logger,
	})
}

func (c *CompositionRoot) CreateReleaseOrphanedDronesCommandHandler() commands.ReleaseOrphanedDronesCommandHandler {
	return commands.NewReleaseOrphanedDronesCommandHandler(c.uow())
}

func (c *CompositionRoot) orderReader() ports.OrderReader {
	return orderrepo.NewGormOrderRepository(c.gormDB, nil)
}

func (c *CompositionRoot) droneReader() ports.DroneReader {
	return dronerepo.NewGormDroneRepository(c.gormDB, nil)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateListRestaurantOrdersQueryHandler() queries.ListRestaurantOrdersQueryHandler {
	return queries.NewListRestaurantOrdersQueryHandler(c.orderReader())
}

func (c *CompositionRoot) CreateGetDroneQueryHandler() queries.GetDroneQueryHandler {
	return queries.NewGetDroneQueryHandler(c.droneReader())
}

func (c *CompositionRoot) CreateListDronesQueryHandler() queries.ListDronesQueryHandler {
	return queries.NewListDronesQueryHandler(c.droneReader())
}

func (c *CompositionRoot) CreateListAvailableDronesQueryHandler() queries.ListAvailableDronesQueryHandler {
	return queries.NewListAvailableDronesQueryHandler(c.droneReader())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reconcileJob := jobs.NewOrphanedDroneReconcileJob(
		c.CreateReleaseOrphanedDronesCommandHandler(),
		c.configs.ReconcileSchedule,
		c.logger,
	)
	return jobs.NewJobManager(c.simulator, reconcileJob)
}

func (c *CompositionRoot) CreateBroadcaster() *tracking.Broadcaster {
	return tracking.NewBroadcaster(
		c.registry, c.CreateGetOrderQueryHandler(), c.configs.TrackingInterval, c.logger,
	)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		MarkOrderDelivered: c.CreateMarkOrderDeliveredCommandHandler(),
		AssignDrone:        c.CreateAssignDroneCommandHandler(),
		MockPayment:        c.CreateMockPaymentCommandHandler(),
		CreateDrone:        c.CreateCreateDroneCommandHandler(),
		AttachDrone:        c.CreateAttachDroneToRestaurantCommandHandler(),
		SetDroneStatus:     c.CreateSetDroneStatusCommandHandler(),
		RegisterRestaurant: c.CreateRegisterRestaurantCommandHandler(),

		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListCustomerOrders:   c.CreateListCustomerOrdersQueryHandler(),
		ListRestaurantOrders: c.CreateListRestaurantOrdersQueryHandler(),
		GetDrone:             c.CreateGetDroneQueryHandler(),
		ListDrones:           c.CreateListDronesQueryHandler(),
		ListAvailableDrones:  c.CreateListAvailableDronesQueryHandler(),
	}, c.CreateBroadcaster(), c.logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	return httpin.NewRouter(c.CreateServer(), httpin.RouterConfig{
		RateLimit: c.configs.RateLimitRPS,
		RateBurst: int(c.configs.RateLimitRPS) * 2,
	})
}

// Close ends live tracking streams and releases the outbound clients.
// Call it after the job manager stopped so no event is published afterwards.
func (c *CompositionRoot) Close() error {
	c.registry.Close()

	var errList []error
	if c.publisher != nil {
		errList = append(errList, c.publisher.Close())
	}
	if c.redisClient != nil {
		errList = append(errList, c.redisClient.Close())
	}
	return errors.Join(errList...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
