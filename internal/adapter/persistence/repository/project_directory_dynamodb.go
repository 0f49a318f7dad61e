package repository

import (
	"context"

	"grantflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID         string   `dynamodbav:"id"`
	ManagerIDs []string `dynamodbav:"manager_ids,omitempty"`
}

// ProjectDirectoryDynamo resolves manager assignments from the projects
// table owned by the upstream administration service. Membership is a
// contains() filter over the manager id list, mirroring the upstream
// data shape; the table is small (one row per project).

type ProjectDirectoryDynamo struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectDirectory = (*ProjectDirectoryDynamo)(nil)

func NewProjectDirectoryDynamo(ddb *dynamodb.Client) *ProjectDirectoryDynamo {
	return &ProjectDirectoryDynamo{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDirectoryDynamo) ListProjectIDsForManager(ctx context.Context, managerID string) ([]string, error) {
	var ids []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("contains(manager_ids, :pm)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pm": &types.AttributeValueMemberS{Value: managerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ID)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return ids, nil
}
