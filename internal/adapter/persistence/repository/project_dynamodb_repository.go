package repository

import (
	"context"
	"errors"
	"sort"

	"renovation_estimator/internal/domain/entities"
	"renovation_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName = "projects"
	defaultProjectsOwnerIdx  = "owner_id-index"
)

// dynamoAPI is the subset of *dynamodb.Client the repository calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// projectItem is the stored shape of a Project. The category tree and the settings block are
// kept as nested maps and lists so a record stays readable in the console.
type projectItem struct {
	ID             string                  `json:"id"`
	OwnerID        string                  `json:"owner_id"`
	CustomerInfo   entities.CustomerInfo   `json:"customer_info"`
	Categories     []entities.Category     `json:"categories"`
	Settings       entities.Settings       `json:"settings"`
	Totals         entities.Totals         `json:"totals"`
	PaymentDetails entities.PaymentDetails `json:"payment_details"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Writes replace the whole item. Updates and deletes are conditional on the stored owner.
type ProjectDynamoRepository struct {
	ddb        dynamoAPI
	tableName  string
	ownerIndex string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return newProjectDynamoRepository(ddb)
}

func newProjectDynamoRepository(ddb dynamoAPI) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		ownerIndex: getenvDefault("PROJECTS_OWNER_INDEX", defaultProjectsOwnerIdx),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := marshalProject(p)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            projectKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}
	return unmarshalProject(out.Item)
}

// ListByOwner returns the owner's projects, most recently updated first.
func (r *ProjectDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.ownerIndex),
		KeyConditionExpression: aws.String("#owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	projects := make([]entities.Project, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			p, err := unmarshalProject(av)
			if err != nil {
				return nil, err
			}
			projects = append(projects, p)
		}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].UpdatedAt.After(projects[j].UpdatedAt)
	})
	return projects, nil
}

// Update replaces the stored project. A missing record or an owner mismatch yields a
// zero-value Project and no error.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := marshalProject(p)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(ownedByCondition),
		ExpressionAttributeNames:  ownedByNames(),
		ExpressionAttributeValues: ownedByValues(p.OwnerID),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       projectKey(id),
		ConditionExpression:       aws.String(ownedByCondition),
		ExpressionAttributeNames:  ownedByNames(),
		ExpressionAttributeValues: ownedByValues(ownerID),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListPage scans one page of the table. cursor is the id returned as next by the previous
// call; an empty next means the scan is complete.
func (r *ProjectDynamoRepository) ListPage(ctx context.Context, cursor string, limit int32) ([]entities.Project, string, error) {
	in := &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(limit)
	}
	if cursor != "" {
		in.ExclusiveStartKey = projectKey(cursor)
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, "", err
	}

	projects := make([]entities.Project, 0, len(out.Items))
	for _, av := range out.Items {
		p, err := unmarshalProject(av)
		if err != nil {
			return nil, "", err
		}
		projects = append(projects, p)
	}

	next := ""
	if key, ok := out.LastEvaluatedKey["id"].(*types.AttributeValueMemberS); ok {
		next = key.Value
	}
	return projects, next, nil
}

const ownedByCondition = "attribute_exists(#id) AND #owner_id = :owner_id"

func ownedByNames() map[string]string {
	return mergeNames(map[string]string{"#id": "id"}, map[string]string{"#owner_id": "owner_id"})
}

func ownedByValues(ownerID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":owner_id": &types.AttributeValueMemberS{Value: ownerID},
	}
}

func projectKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func withJSONTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }

func withJSONTagsDecode(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

func marshalProject(p entities.Project) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(toProjectItem(p), withJSONTags)
}

func unmarshalProject(av map[string]types.AttributeValue) (entities.Project, error) {
	var it projectItem
	if err := attributevalue.UnmarshalMapWithOptions(av, &it, withJSONTagsDecode); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		CustomerInfo:   p.CustomerInfo,
		Categories:     p.Categories,
		Settings:       p.Settings,
		Totals:         p.Totals,
		PaymentDetails: p.PaymentDetails,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:             it.ID,
		OwnerID:        it.OwnerID,
		CustomerInfo:   it.CustomerInfo,
		Categories:     it.Categories,
		Settings:       it.Settings,
		Totals:         it.Totals,
		PaymentDetails: it.PaymentDetails,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
