package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"commerce-backend/application/commands"
	"commerce-backend/application/commands/bus"
	commandhandlers "commerce-backend/application/commands/handlers"
	"commerce-backend/application/pipeline"
	"commerce-backend/application/ports"
	"commerce-backend/application/queries"
	querybus "commerce-backend/application/queries/bus"
	queryhandlers "commerce-backend/application/queries/handlers"
	"commerce-backend/infrastructure/config"
	"commerce-backend/infrastructure/messaging/eventbridge"
	"commerce-backend/infrastructure/persistence/dynamodb"
	"commerce-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	CustomerRepo   ports.CustomerRepository
	ProductRepo    ports.ProductRepository
	OrderRepo      ports.OrderRepository
	OrderItemRepo  ports.OrderItemRepository
	EventPublisher ports.EventPublisher
	Metrics        *observability.Metrics
	Pipeline       *pipeline.Pipeline
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideCustomerRepository creates a customer repository
func ProvideCustomerRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.CustomerRepository {
	return dynamodb.NewCustomerRepository(client, cfg.CustomersTable, cfg.EmailIndexName, logger)
}

// ProvideProductRepository creates a product repository
func ProvideProductRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProductRepository {
	return dynamodb.NewProductRepository(client, cfg.ProductsTable, cfg.CategoryIndexName, logger)
}

// ProvideOrderRepository creates an order repository
func ProvideOrderRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.OrderRepository {
	return dynamodb.NewOrderRepository(client, cfg.OrdersTable, cfg.CustomerOrderIndexName, logger)
}

// ProvideOrderItemRepository creates an order item repository
func ProvideOrderItemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.OrderItemRepository {
	return dynamodb.NewOrderItemRepository(client, cfg.OrderItemsTable, cfg.OrderItemsIndexName, logger)
}

// ProvideEventPublisher creates an event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates a metrics instance, or nil when metrics are
// disabled. All metrics call sites are nil-safe.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	namespace := fmt.Sprintf("Commerce/%s", cfg.Environment)
	return observability.NewMetrics(client, namespace, logger)
}

// ProvidePipeline creates the getOrder pipeline
func ProvidePipeline(
	orderRepo ports.OrderRepository,
	customerRepo ports.CustomerRepository,
	orderItemRepo ports.OrderItemRepository,
	productRepo ports.ProductRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *pipeline.Pipeline {
	return pipeline.NewPipeline(orderRepo, customerRepo, orderItemRepo, productRepo, publisher, metrics, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) (interface{}, error)
}

// Handle implements bus.CommandHandler
func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) (interface{}, error) {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	customerRepo ports.CustomerRepository,
	productRepo ports.ProductRepository,
	orderRepo ports.OrderRepository,
	orderItemRepo ports.OrderItemRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	createCustomerHandler := commandhandlers.NewCreateCustomerHandler(customerRepo, logger)
	commandBus.Register(commands.CreateCustomerCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			createCmd, ok := cmd.(commands.CreateCustomerCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type")
			}
			return createCustomerHandler.Handle(ctx, createCmd)
		},
	})

	createProductHandler := commandhandlers.NewCreateProductHandler(productRepo, logger)
	commandBus.Register(commands.CreateProductCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			createCmd, ok := cmd.(commands.CreateProductCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type")
			}
			return createProductHandler.Handle(ctx, createCmd)
		},
	})

	createOrderHandler := commandhandlers.NewCreateOrderHandler(orderRepo, orderItemRepo, publisher, logger)
	commandBus.Register(commands.CreateOrderCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			createCmd, ok := cmd.(commands.CreateOrderCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type")
			}
			return createOrderHandler.Handle(ctx, createCmd)
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

// Handle implements querybus.QueryHandler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	p *pipeline.Pipeline,
	customerRepo ports.CustomerRepository,
	productRepo ports.ProductRepository,
	orderRepo ports.OrderRepository,
	orderItemRepo ports.OrderItemRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	getOrderHandler := queryhandlers.NewGetOrderHandler(p, logger)
	queryBus.Register(queries.GetOrderQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetOrderQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getOrderHandler.Handle(ctx, getQuery)
		},
	})

	getCustomerHandler := queryhandlers.NewGetCustomerHandler(customerRepo, logger)
	queryBus.Register(queries.GetCustomerQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetCustomerQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getCustomerHandler.Handle(ctx, getQuery)
		},
	})

	searchCustomerHandler := queryhandlers.NewSearchCustomerByEmailHandler(customerRepo, logger)
	queryBus.Register(queries.SearchCustomerByEmailQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			searchQuery, ok := query.(queries.SearchCustomerByEmailQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return searchCustomerHandler.Handle(ctx, searchQuery)
		},
	})

	listCustomerOrdersHandler := queryhandlers.NewListCustomerOrdersHandler(orderRepo, logger)
	queryBus.Register(queries.ListCustomerOrdersQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListCustomerOrdersQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listCustomerOrdersHandler.Handle(ctx, listQuery)
		},
	})

	getProductHandler := queryhandlers.NewGetProductHandler(productRepo, logger)
	queryBus.Register(queries.GetProductQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetProductQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getProductHandler.Handle(ctx, getQuery)
		},
	})

	listProductsHandler := queryhandlers.NewListProductsByCategoryHandler(productRepo, logger)
	queryBus.Register(queries.ListProductsByCategoryQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListProductsByCategoryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listProductsHandler.Handle(ctx, listQuery)
		},
	})

	listOrdersHandler := queryhandlers.NewListOrdersHandler(orderRepo, logger)
	queryBus.Register(queries.ListOrdersQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListOrdersQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listOrdersHandler.Handle(ctx, listQuery)
		},
	})

	salesSummaryHandler := queryhandlers.NewGetSalesSummaryHandler(orderRepo, logger)
	queryBus.Register(queries.GetSalesSummaryQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			summaryQuery, ok := query.(queries.GetSalesSummaryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return salesSummaryHandler.Handle(ctx, summaryQuery)
		},
	})

	customerStatsHandler := queryhandlers.NewGetCustomerStatsHandler(customerRepo, logger)
	queryBus.Register(queries.GetCustomerStatsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			statsQuery, ok := query.(queries.GetCustomerStatsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return customerStatsHandler.Handle(ctx, statsQuery)
		},
	})

	productRankingHandler := queryhandlers.NewGetProductRankingHandler(orderItemRepo, productRepo, logger)
	queryBus.Register(queries.GetProductRankingQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			rankingQuery, ok := query.(queries.GetProductRankingQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return productRankingHandler.Handle(ctx, rankingQuery)
		},
	})

	return queryBus
}
