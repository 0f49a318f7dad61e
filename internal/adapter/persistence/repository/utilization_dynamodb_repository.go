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
	defaultUtilizationsTableName = "utilizations"
	utilizationsFundIndex        = "fund_request_id-index"
	utilizationsNgoIndex         = "ngo_id-index"
	utilizationsStatusIndex      = "status-index"
)

type utilizationItem struct {
	ID              string         `dynamodbav:"id"`
	FundRequestID   string         `dynamodbav:"fund_request_id"`
	NgoID           string         `dynamodbav:"ngo_id"`
	Title           string         `dynamodbav:"title"`
	AmountCents     int64          `dynamodbav:"amount_cents"`
	ProofReference  string         `dynamodbav:"proof_reference,omitempty"`
	CustomData      map[string]any `dynamodbav:"custom_data,omitempty"`
	Status          string         `dynamodbav:"status"`
	CreatedAt       string         `dynamodbav:"created_at"`
	VerifiedAt      string         `dynamodbav:"verified_at,omitempty"`
	RejectionReason string         `dynamodbav:"rejection_reason,omitempty"`
	Version         int64          `dynamodbav:"version"`
}

// UtilizationDynamoRepository persists UtilizationRecord entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: fund_request_id-index, ngo_id-index, status-index

type UtilizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUtilizationRepository = (*UtilizationDynamoRepository)(nil)

func NewUtilizationDynamoRepository(ddb *dynamodb.Client) *UtilizationDynamoRepository {
	return &UtilizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UTILIZATIONS_TABLE", defaultUtilizationsTableName),
	}
}

func (r *UtilizationDynamoRepository) Create(ctx context.Context, u entities.UtilizationRecord) (entities.UtilizationRecord, error) {
	it := toUtilizationItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.UtilizationRecord{}, err
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
		return entities.UtilizationRecord{}, err
	}
	return u, nil
}

func (r *UtilizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.UtilizationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UtilizationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.UtilizationRecord{}, nil
	}

	var it utilizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UtilizationRecord{}, err
	}
	return fromUtilizationItem(it), nil
}

func (r *UtilizationDynamoRepository) ListByFundRequest(ctx context.Context, fundRequestID string) ([]entities.UtilizationRecord, error) {
	return r.queryIndex(ctx, utilizationsFundIndex, "fund_request_id", fundRequestID)
}

func (r *UtilizationDynamoRepository) ListByNgo(ctx context.Context, ngoID string) ([]entities.UtilizationRecord, error) {
	return r.queryIndex(ctx, utilizationsNgoIndex, "ngo_id", ngoID)
}

func (r *UtilizationDynamoRepository) ListByStatus(ctx context.Context, status entities.UtilizationStatus) ([]entities.UtilizationRecord, error) {
	return r.queryIndex(ctx, utilizationsStatusIndex, "status", string(status))
}

func (r *UtilizationDynamoRepository) Update(ctx context.Context, u entities.UtilizationRecord) (entities.UtilizationRecord, error) {
	expected := u.Version
	u.Version = expected + 1

	it := toUtilizationItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.UtilizationRecord{}, err
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
			current, gerr := r.GetByID(ctx, u.ID)
			if gerr != nil {
				return entities.UtilizationRecord{}, gerr
			}
			if current.ID == "" {
				return entities.UtilizationRecord{}, nil
			}
			return entities.UtilizationRecord{}, entities.ErrConcurrentModification
		}
		return entities.UtilizationRecord{}, err
	}
	return u, nil
}

func (r *UtilizationDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.UtilizationRecord, error) {
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

	items := make([]entities.UtilizationRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it utilizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUtilizationItem(it))
	}
	return items, nil
}

func toUtilizationItem(u entities.UtilizationRecord) utilizationItem {
	return utilizationItem{
		ID:              u.ID,
		FundRequestID:   u.FundRequestID,
		NgoID:           u.NgoID,
		Title:           u.Title,
		AmountCents:     u.AmountCents,
		ProofReference:  u.ProofReference,
		CustomData:      u.CustomData,
		Status:          string(u.Status),
		CreatedAt:       formatTime(u.CreatedAt),
		VerifiedAt:      formatTimePtr(u.VerifiedAt),
		RejectionReason: u.RejectionReason,
		Version:         u.Version,
	}
}

func fromUtilizationItem(it utilizationItem) entities.UtilizationRecord {
	return entities.UtilizationRecord{
		ID:              it.ID,
		FundRequestID:   it.FundRequestID,
		NgoID:           it.NgoID,
		Title:           it.Title,
		AmountCents:     it.AmountCents,
		ProofReference:  it.ProofReference,
		CustomData:      it.CustomData,
		Status:          entities.UtilizationStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		VerifiedAt:      parseTimePtr(it.VerifiedAt),
		RejectionReason: it.RejectionReason,
		Version:         it.Version,
	}
}
