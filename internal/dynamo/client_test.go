package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	pages     []*dynamodb.ScanOutput
	tables    [][]string
	scanErr   error
	scanCalls []*dynamodb.ScanInput
	listCalls int
}

func (f *fakeAPI) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	page := f.pages[len(f.scanCalls)]
	f.scanCalls = append(f.scanCalls, in)
	return page, nil
}

func (f *fakeAPI) ListTables(_ context.Context, _ *dynamodb.ListTablesInput, _ ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	page := f.tables[f.listCalls]
	f.listCalls++
	out := &dynamodb.ListTablesOutput{TableNames: page}
	if f.listCalls < len(f.tables) {
		out.LastEvaluatedTableName = aws.String(page[len(page)-1])
	}
	return out, nil
}

func item(attr string, v types.AttributeValue) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{attr: v}
}

func TestScanStrings(t *testing.T) {
	api := &fakeAPI{
		pages: []*dynamodb.ScanOutput{
			{
				Items: []map[string]types.AttributeValue{
					item("name", &types.AttributeValueMemberS{Value: "Apple"}),
					item("name", &types.AttributeValueMemberN{Value: "42"}),
				},
				LastEvaluatedKey: item("id", &types.AttributeValueMemberS{Value: "2"}),
			},
			{
				Items: []map[string]types.AttributeValue{
					item("name", &types.AttributeValueMemberSS{Value: []string{"Banana", "Cherry"}}),
					item("other", &types.AttributeValueMemberS{Value: "ignored"}),
				},
			},
		},
	}

	c := NewClientWithAPI(api, "local")
	got, err := c.ScanStrings(context.Background(), "fruit", "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple", "Banana", "Cherry"}, got)

	require.Len(t, api.scanCalls, 2)
	assert.Equal(t, "fruit", aws.ToString(api.scanCalls[0].TableName))
	assert.Equal(t, "#attr", aws.ToString(api.scanCalls[0].ProjectionExpression))
	assert.Equal(t, map[string]string{"#attr": "name"}, api.scanCalls[0].ExpressionAttributeNames)
	assert.Nil(t, api.scanCalls[0].ExclusiveStartKey)
	assert.NotNil(t, api.scanCalls[1].ExclusiveStartKey)
}

func TestScanStringsError(t *testing.T) {
	c := NewClientWithAPI(&fakeAPI{scanErr: errors.New("throttled")}, "local")
	_, err := c.ScanStrings(context.Background(), "fruit", "name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan table")
}

func TestHasTable(t *testing.T) {
	api := &fakeAPI{tables: [][]string{{"alpha", "beta"}, {"fruit"}}}
	c := NewClientWithAPI(api, "local")

	ok, err := c.HasTable(context.Background(), "fruit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, api.listCalls)

	api = &fakeAPI{tables: [][]string{{"alpha"}}}
	ok, err = NewClientWithAPI(api, "local").HasTable(context.Background(), "fruit")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "local", c.Region())
}
