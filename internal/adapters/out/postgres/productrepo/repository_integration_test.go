package productrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/productrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)
	suite.repository = productrepo.NewGormProductRepository(suite.db)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Free-range eggs", kernel.MustAmount("0.45"), false)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))

	for _, get := range []func(context.Context, kernel.UUID) (*product.Product, error){
		suite.repository.Get,
		suite.repository.GetForShare,
	} {
		restored, getErr := get(ctx, p.ID())
		suite.Require().NoError(getErr)
		suite.True(restored.ID().IsEqual(p.ID()))
		suite.True(restored.Owner().IsEqual(p.Owner()))
		suite.Equal("Free-range eggs", restored.Name())
		suite.True(restored.Price().IsEqual(kernel.MustAmount("0.45")))
		suite.False(restored.AllowFloatValues())
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateIDIsConflict() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Honey", kernel.MustAmount("8"), true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	err = suite.repository.Add(ctx, p)

	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistentProduct() {
	restored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(restored)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetForShare_AllowsConcurrentReaders() {
	ctx := context.Background()
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Milk", kernel.MustAmount("1.2"), true)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	first := suite.db.Begin()
	defer first.Rollback()
	second := suite.db.Begin()
	defer second.Rollback()
	suite.Require().NoError(second.Exec("SET LOCAL lock_timeout = '200ms'").Error)

	_, err = productrepo.NewGormProductRepository(first).GetForShare(ctx, p.ID())
	suite.Require().NoError(err)
	_, err = productrepo.NewGormProductRepository(second).GetForShare(ctx, p.ID())
	suite.Require().NoError(err)

	err = second.Exec("UPDATE products SET price = 2 WHERE id = ?", p.ID().Bytes()).Error
	suite.Require().Error(err)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
