package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const productsNS = "appdb.products"

func newMockT(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestProductRepository_FindByID(t *testing.T) {
	mt := newMockT(t)

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Pen"},
			{Key: "price", Value: 10.0},
			{Key: "quantity", Value: int32(5)},
		}))
		repo := repository.NewProductRepository(mt.DB)

		product, err := repo.FindByID(context.Background(), id)

		require.NoError(mt, err)
		assert.Equal(mt, id, product.ID)
		assert.Equal(mt, "Pen", product.Name)
		assert.Equal(mt, 5, product.Quantity)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))
		repo := repository.NewProductRepository(mt.DB)

		product, err := repo.FindByID(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, repository.ErrNotFound)
		assert.Nil(mt, product)
	})
}

func TestProductRepository_SearchQuotesInput(t *testing.T) {
	mt := newMockT(t)

	mt.Run("regex metacharacters", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch))
		repo := repository.NewProductRepository(mt.DB)

		products, err := repo.Search(context.Background(), "c++ (2nd ed.)", "")

		require.NoError(mt, err)
		assert.Empty(mt, products)
		assert.NotNil(mt, products)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		name := filter.Lookup("name").Document()
		assert.Equal(mt, `c\+\+ \(2nd ed\.\)`, name.Lookup("$regex").StringValue())
		assert.Equal(mt, "i", name.Lookup("$options").StringValue())
		_, err = filter.LookupErr("description")
		assert.Error(mt, err)
	})
}

func TestProductRepository_Delete(t *testing.T) {
	mt := newMockT(t)

	mt.Run("missing document", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		repo := repository.NewProductRepository(mt.DB)

		err := repo.Delete(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestProductRepository_AdjustQuantity(t *testing.T) {
	mt := newMockT(t)

	mt.Run("decrement applied", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})
		repo := repository.NewProductRepository(mt.DB)

		require.NoError(mt, repo.AdjustQuantity(context.Background(), primitive.NewObjectID(), -2))

		update := mt.GetStartedEvent().Command.Lookup("updates").Array().Index(0).Value().Document()
		q := update.Lookup("q").Document()
		assert.Equal(mt, int32(2), q.Lookup("quantity", "$gte").Int32())
	})

	mt.Run("insufficient stock", func(mt *mtest.T) {
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}},
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)
		repo := repository.NewProductRepository(mt.DB)

		err := repo.AdjustQuantity(context.Background(), primitive.NewObjectID(), -10)

		assert.ErrorIs(mt, err, repository.ErrInsufficientStock)
	})

	mt.Run("unknown product", func(mt *mtest.T) {
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}},
			mtest.CreateCursorResponse(0, productsNS, mtest.FirstBatch),
		)
		repo := repository.NewProductRepository(mt.DB)

		err := repo.AdjustQuantity(context.Background(), primitive.NewObjectID(), -1)

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	mt := newMockT(t)

	mt.Run("duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: appdb.users index: email_1",
		}))
		repo := repository.NewUserRepository(mt.DB)

		err := repo.Create(context.Background(), &models.User{Username: "ana", Email: "ana@example.com"})

		assert.ErrorIs(mt, err, repository.ErrDuplicate)
	})
}

func TestOrderRepository_TotalRevenue(t *testing.T) {
	mt := newMockT(t)

	mt.Run("sums orders", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "appdb.orders", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: 330.0},
		}))
		repo := repository.NewOrderRepository(mt.DB)

		revenue, err := repo.TotalRevenue(context.Background())

		require.NoError(mt, err)
		assert.InDelta(mt, 330.0, revenue, 0.001)
	})

	mt.Run("no orders", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "appdb.orders", mtest.FirstBatch))
		repo := repository.NewOrderRepository(mt.DB)

		revenue, err := repo.TotalRevenue(context.Background())

		require.NoError(mt, err)
		assert.Zero(mt, revenue)
	})
}
