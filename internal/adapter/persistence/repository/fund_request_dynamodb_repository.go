package repository

import (
	"context"
	"strconv"

	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFundRequestsTableName = "fund_requests"
	fundRequestsBudgetIndex      = "budget_request_id-index"
	fundRequestsNgoIndex         = "ngo_id-index"
	fundRequestsStatusIndex      = "status-index"
)

type fundRequestItem struct {
	ID                string         `dynamodbav:"id"`
	BudgetRequestID   string         `dynamodbav:"budget_request_id"`
	NgoID             string         `dynamodbav:"ngo_id"`
	Title             string         `dynamodbav:"title"`
	AmountCents       int64          `dynamodbav:"amount_cents"`
	CustomData        map[string]any `dynamodbav:"custom_data,omitempty"`
	Status            string         `dynamodbav:"status"`
	CreatedAt         string         `dynamodbav:"created_at"`
	PMApprovalDate    string         `dynamodbav:"pm_approval_date,omitempty"`
	AdminApprovalDate string         `dynamodbav:"admin_approval_date,omitempty"`
	DecisionDate      string         `dynamodbav:"decision_date,omitempty"`
	RejectionReason   string         `dynamodbav:"rejection_reason,omitempty"`
	Version           int64          `dynamodbav:"version"`
}

// FundRequestDynamoRepository persists FundRequest entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_request_id-index, ngo_id-index, status-index

type FundRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFundRequestRepository = (*FundRequestDynamoRepository)(nil)

func NewFundRequestDynamoRepository(ddb *dynamodb.Client) *FundRequestDynamoRepository {
	return &FundRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FUND_REQUESTS_TABLE", defaultFundRequestsTableName),
	}
}

func (r *FundRequestDynamoRepository) Create(ctx context.Context, f entities.FundRequest) (entities.FundRequest, error) {
	it := toFundRequestItem(f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FundRequest{}, err
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
		return entities.FundRequest{}, err
	}
	return f, nil
}

func (r *FundRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.FundRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FundRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.FundRequest{}, nil
	}

	var it fundRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FundRequest{}, err
	}
	return fromFundRequestItem(it), nil
}

func (r *FundRequestDynamoRepository) ListByBudgetRequest(ctx context.Context, budgetRequestID string) ([]entities.FundRequest, error) {
	return r.queryIndex(ctx, fundRequestsBudgetIndex, "budget_request_id", budgetRequestID)
}

func (r *FundRequestDynamoRepository) ListByNgo(ctx context.Context, ngoID string) ([]entities.FundRequest, error) {
	return r.queryIndex(ctx, fundRequestsNgoIndex, "ngo_id", ngoID)
}

func (r *FundRequestDynamoRepository) ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.FundRequest, error) {
	return r.queryIndex(ctx, fundRequestsStatusIndex, "status", string(status))
}

func (r *FundRequestDynamoRepository) Update(ctx context.Context, f entities.FundRequest) (entities.FundRequest, error) {
	expected := f.Version
	f.Version = expected + 1

	it := toFundRequestItem(f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FundRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			current, gerr := r.GetByID(ctx, f.ID)
			if gerr != nil {
				return entities.FundRequest{}, gerr
			}
			if current.ID == "" {
				return entities.FundRequest{}, nil
			}
			return entities.FundRequest{}, entities.ErrConcurrentModification
		}
		return entities.FundRequest{}, err
	}
	return f, nil
}

func (r *FundRequestDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.FundRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.FundRequest, 0, len(out.Items))
	for _, raw := range out.Items {
		var it fundRequestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFundRequestItem(it))
	}
	return items, nil
}

func toFundRequestItem(f entities.FundRequest) fundRequestItem {
	return fundRequestItem{
		ID:                f.ID,
		BudgetRequestID:   f.BudgetRequestID,
		NgoID:             f.NgoID,
		Title:             f.Title,
		AmountCents:       f.AmountCents,
		CustomData:        f.CustomData,
		Status:            string(f.Status),
		CreatedAt:         formatTime(f.CreatedAt),
		PMApprovalDate:    formatTimePtr(f.PMApprovalDate),
		AdminApprovalDate: formatTimePtr(f.AdminApprovalDate),
		DecisionDate:      formatTimePtr(f.DecisionDate),
		RejectionReason:   f.RejectionReason,
		Version:           f.Version,
	}
}

func fromFundRequestItem(it fundRequestItem) entities.FundRequest {
	return entities.FundRequest{
		ID:              it.ID,
		BudgetRequestID: it.BudgetRequestID,
		NgoID:           it.NgoID,
		Title:           it.Title,
		AmountCents:     it.AmountCents,
		CustomData:      it.CustomData,
		Approval: entities.Approval{
			Status:            entities.ApprovalStatus(it.Status),
			CreatedAt:         parseTime(it.CreatedAt),
			PMApprovalDate:    parseTimePtr(it.PMApprovalDate),
			AdminApprovalDate: parseTimePtr(it.AdminApprovalDate),
			DecisionDate:      parseTimePtr(it.DecisionDate),
			RejectionReason:   it.RejectionReason,
			Version:           it.Version,
		},
	}
}
