package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"renovation_estimator/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	putIn    []*dynamodb.PutItemInput
	deleteIn []*dynamodb.DeleteItemInput
	queryIn  []*dynamodb.QueryInput
	scanIn   []*dynamodb.ScanInput

	putErr    error
	deleteErr error
	getOut    *dynamodb.GetItemOutput
	queryOuts []*dynamodb.QueryOutput
	scanOut   *dynamodb.ScanOutput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = append(f.putIn, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = append(f.deleteIn, in)
	return &dynamodb.DeleteItemOutput{}, f.deleteErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	out := f.queryOuts[0]
	f.queryOuts = f.queryOuts[1:]
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIn = append(f.scanIn, in)
	return f.scanOut, nil
}

func sampleProject(id string, updated time.Time) entities.Project {
	custom := entities.NewCustomWorkItem("Built-in shelving", "Shelves")
	custom.MeasurementType = "by-unit"
	custom.CategoryKey = "living-room"
	custom.Surfaces = []entities.Surface{{MeasurementType: "by-unit", Units: 2}}
	return entities.Project{
		ID:           id,
		OwnerID:      "owner-1",
		CustomerInfo: entities.CustomerInfo{FirstName: "Ana", Address: "12 Elm St"},
		Categories: []entities.Category{
			{Key: "living-room", Name: "Living Room", WorkItems: []entities.WorkItem{custom}},
		},
		Settings: entities.Settings{
			TaxRate:  0.08,
			Payments: []entities.Payment{{ID: "pay-1", Date: updated, Amount: 100, Method: "Deposit", IsPaid: true, Status: entities.PaymentStatusPaid}},
		},
		Totals:         entities.Totals{Subtotal: 500, Total: 540},
		PaymentDetails: entities.PaymentDetails{TotalPaid: 100, TotalDue: 440, DepositAmount: 100},
		CreatedAt:      updated.Add(-time.Hour),
		UpdatedAt:      updated,
	}
}

func TestProjectItemRoundTripKeepsNestedTree(t *testing.T) {
	p := sampleProject("p-1", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	av, err := marshalProject(p)
	require.NoError(t, err)
	assert.Contains(t, av, "owner_id")
	assert.Contains(t, av, "categories")
	assert.IsType(t, &types.AttributeValueMemberS{}, av["created_at"])

	got, err := unmarshalProject(av)
	require.NoError(t, err)
	assert.Equal(t, p.Categories, got.Categories)
	assert.Equal(t, p.Totals, got.Totals)
	assert.Equal(t, p.PaymentDetails, got.PaymentDetails)
	assert.True(t, p.UpdatedAt.Equal(got.UpdatedAt))
	require.Len(t, got.Settings.Payments, 1)
	assert.True(t, p.Settings.Payments[0].Date.Equal(got.Settings.Payments[0].Date))
}

func TestProjectDynamoRepository_Create(t *testing.T) {
	fake := &fakeDynamo{}
	repo := newProjectDynamoRepository(fake)

	_, err := repo.Create(context.Background(), sampleProject("p-1", time.Now().UTC()))
	require.NoError(t, err)
	require.Len(t, fake.putIn, 1)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(fake.putIn[0].ConditionExpression))
	assert.Equal(t, defaultProjectsTableName, aws.ToString(fake.putIn[0].TableName))
}

func TestProjectDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo := newProjectDynamoRepository(&fakeDynamo{})

		got, err := repo.GetByID(context.Background(), "p-404")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("found", func(t *testing.T) {
		av, err := marshalProject(sampleProject("p-1", time.Now().UTC()))
		require.NoError(t, err)
		repo := newProjectDynamoRepository(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: av}})

		got, err := repo.GetByID(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, "p-1", got.ID)
		assert.Equal(t, "Built-in shelving", got.Categories[0].WorkItems[0].CustomWorkTypeName)
	})
}

func TestProjectDynamoRepository_Update(t *testing.T) {
	t.Run("conditional on owner", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := newProjectDynamoRepository(fake)

		got, err := repo.Update(context.Background(), sampleProject("p-1", time.Now().UTC()))
		require.NoError(t, err)
		assert.Equal(t, "p-1", got.ID)
		in := fake.putIn[0]
		assert.Equal(t, ownedByCondition, aws.ToString(in.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "owner-1"}, in.ExpressionAttributeValues[":owner_id"])
	})

	t.Run("condition failure is a miss", func(t *testing.T) {
		fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("nope")}}
		repo := newProjectDynamoRepository(fake)

		got, err := repo.Update(context.Background(), sampleProject("p-1", time.Now().UTC()))
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		fake := &fakeDynamo{putErr: errors.New("throttled")}
		repo := newProjectDynamoRepository(fake)

		_, err := repo.Update(context.Background(), sampleProject("p-1", time.Now().UTC()))
		assert.EqualError(t, err, "throttled")
	})
}

func TestProjectDynamoRepository_Delete(t *testing.T) {
	fake := &fakeDynamo{}
	repo := newProjectDynamoRepository(fake)

	deleted, err := repo.Delete(context.Background(), "p-1", "owner-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	fake.deleteErr = &types.ConditionalCheckFailedException{}
	deleted, err = repo.Delete(context.Background(), "p-1", "owner-2")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProjectDynamoRepository_ListByOwner(t *testing.T) {
	older := sampleProject("p-old", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := sampleProject("p-new", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	avOld, err := marshalProject(older)
	require.NoError(t, err)
	avNew, err := marshalProject(newer)
	require.NoError(t, err)

	fake := &fakeDynamo{queryOuts: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{avOld}, LastEvaluatedKey: projectKey("p-old")},
		{Items: []map[string]types.AttributeValue{avNew}},
	}}
	repo := newProjectDynamoRepository(fake)

	got, err := repo.ListByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p-new", got[0].ID)
	assert.Equal(t, "p-old", got[1].ID)
	require.Len(t, fake.queryIn, 2)
	assert.Equal(t, defaultProjectsOwnerIdx, aws.ToString(fake.queryIn[0].IndexName))
}

func TestProjectDynamoRepository_ListPage(t *testing.T) {
	av, err := marshalProject(sampleProject("p-1", time.Now().UTC()))
	require.NoError(t, err)
	fake := &fakeDynamo{scanOut: &dynamodb.ScanOutput{
		Items:            []map[string]types.AttributeValue{av},
		LastEvaluatedKey: projectKey("p-1"),
	}}
	repo := newProjectDynamoRepository(fake)

	got, next, err := repo.ListPage(context.Background(), "p-0", 25)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p-1", next)
	assert.Equal(t, int32(25), aws.ToInt32(fake.scanIn[0].Limit))
	assert.Equal(t, projectKey("p-0"), fake.scanIn[0].ExclusiveStartKey)

	fake.scanOut = &dynamodb.ScanOutput{}
	_, next, err = repo.ListPage(context.Background(), "p-1", 25)
	require.NoError(t, err)
	assert.Empty(t, next)
}
