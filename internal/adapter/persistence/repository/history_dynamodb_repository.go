package repository

import (
	"context"
	"strings"
	"time"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

// historyDynamoAPI is the subset of *dynamodb.Client the repository needs.
type historyDynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type userHistoryItem struct {
	UserID         string                 `dynamodbav:"user_id"`
	HouseData      []houseRecordItem      `dynamodbav:"house_data"`
	EstimationData []estimationRecordItem `dynamodbav:"estimation_data"`
	UpdatedAt      string                 `dynamodbav:"updated_at"`
}

type houseRecordItem struct {
	ID        string    `dynamodbav:"id"`
	CreatedAt string    `dynamodbav:"created_at"`
	House     houseItem `dynamodbav:"house"`
}

type houseItem struct {
	Size                 int    `dynamodbav:"size"`
	FloorCount           int    `dynamodbav:"floor_count"`
	RoomCount            int    `dynamodbav:"room_count"`
	BathroomCount        int    `dynamodbav:"bathroom_count"`
	ConstructionType     string `dynamodbav:"construction_type"`
	MaterialGrade        string `dynamodbav:"material_grade"`
	SoilCondition        string `dynamodbav:"soil_condition"`
	AccessCondition      string `dynamodbav:"access_condition"`
	NoiseRestriction     string `dynamodbav:"noise_restriction"`
	PumpTruckRestriction string `dynamodbav:"pump_truck_restriction"`
	UrbanArea            string `dynamodbav:"urban_area"`
	WinterConstruction   string `dynamodbav:"winter_construction"`
}

type estimationRecordItem struct {
	ID        string         `dynamodbav:"id"`
	CreatedAt string         `dynamodbav:"created_at"`
	Result    estimationItem `dynamodbav:"result"`
}

type estimationItem struct {
	TotalCostKRW      int64          `dynamodbav:"total_cost_krw"`
	TotalDurationDays int            `dynamodbav:"total_duration_days"`
	CostLower         int64          `dynamodbav:"cost_lower"`
	CostUpper         int64          `dynamodbav:"cost_upper"`
	DurationLower     int64          `dynamodbav:"duration_lower"`
	DurationUpper     int64          `dynamodbav:"duration_upper"`
	Source            string         `dynamodbav:"source"`
	ModelInfo         *modelInfoItem `dynamodbav:"model_info,omitempty"`
	Input             requestItem    `dynamodbav:"input"`
	Explanation       string         `dynamodbav:"explanation,omitempty"`
	Message           string         `dynamodbav:"message"`
	FallbackReason    string         `dynamodbav:"fallback_reason,omitempty"`
}

type modelInfoItem struct {
	Name         string  `dynamodbav:"model_name"`
	Version      string  `dynamodbav:"version"`
	Accuracy     float64 `dynamodbav:"accuracy"`
	TrainingDate string  `dynamodbav:"training_date"`
}

type requestItem struct {
	StartDate            string   `dynamodbav:"start_date"`
	Size                 int      `dynamodbav:"size"`
	FloorCount           int      `dynamodbav:"floor_count"`
	RoomCount            int      `dynamodbav:"room_count"`
	BathroomCount        int      `dynamodbav:"bathroom_count"`
	ConstructionType     string   `dynamodbav:"construction_type"`
	MaterialGrade        string   `dynamodbav:"material_grade"`
	SoilCondition        string   `dynamodbav:"soil_condition"`
	AccessCondition      string   `dynamodbav:"access_condition"`
	NoiseRestriction     bool     `dynamodbav:"noise_restriction"`
	PumpTruckRestriction bool     `dynamodbav:"pump_truck_restriction"`
	UrbanArea            bool     `dynamodbav:"urban_area"`
	WinterConstruction   bool     `dynamodbav:"winter_construction"`
	ConditionTags        []string `dynamodbav:"condition_tags"`
}

// HistoryDynamoRepository stores one document per user.
//
// Table requirements:
//   - PK: user_id (string)
//
// house_data and estimation_data are lists grown with list_append, so
// concurrent saves for the same user never overwrite each other.
type HistoryDynamoRepository struct {
	ddb       historyDynamoAPI
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb historyDynamoAPI, tableName string) *HistoryDynamoRepository {
	if tableName == "" {
		tableName = defaultUsersTableName
	}
	return &HistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HistoryDynamoRepository) Append(ctx context.Context, userID string, house *entities.HouseRecord, estimation *entities.EstimationRecord) error {
	sets := []string{"#updated_at = :updated_at"}
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}

	if house != nil {
		av, err := attributevalue.Marshal([]houseRecordItem{toHouseRecordItem(*house)})
		if err != nil {
			return err
		}
		sets = append(sets, "#house_data = list_append(if_not_exists(#house_data, :empty), :house)")
		names["#house_data"] = "house_data"
		values[":house"] = av
	}
	if estimation != nil {
		av, err := attributevalue.Marshal([]estimationRecordItem{toEstimationRecordItem(*estimation)})
		if err != nil {
			return err
		}
		sets = append(sets, "#estimation_data = list_append(if_not_exists(#estimation_data, :empty), :estimation)")
		names["#estimation_data"] = "estimation_data"
		values[":estimation"] = av
	}
	if house != nil || estimation != nil {
		values[":empty"] = &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func (r *HistoryDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.UserHistory, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberS{Value: userID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserHistory{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserHistory{}, nil
	}

	var it userHistoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserHistory{}, err
	}
	return fromUserHistoryItem(it), nil
}

func toHouseRecordItem(h entities.HouseRecord) houseRecordItem {
	return houseRecordItem{
		ID:        h.ID,
		CreatedAt: formatTime(h.CreatedAt),
		House: houseItem{
			Size:                 h.House.SizePyeong,
			FloorCount:           h.House.FloorCount,
			RoomCount:            h.House.RoomCount,
			BathroomCount:        h.House.BathroomCount,
			ConstructionType:     string(h.House.ConstructionType),
			MaterialGrade:        string(h.House.MaterialGrade),
			SoilCondition:        string(h.House.SoilCondition),
			AccessCondition:      string(h.House.AccessCondition),
			NoiseRestriction:     string(h.House.NoiseRestriction),
			PumpTruckRestriction: string(h.House.PumpTruckRestriction),
			UrbanArea:            string(h.House.UrbanArea),
			WinterConstruction:   string(h.House.WinterConstruction),
		},
	}
}

func fromHouseRecordItem(it houseRecordItem) entities.HouseRecord {
	return entities.HouseRecord{
		ID:        it.ID,
		CreatedAt: parseTime(it.CreatedAt),
		House: entities.HouseConfiguration{
			SizePyeong:           it.House.Size,
			FloorCount:           it.House.FloorCount,
			RoomCount:            it.House.RoomCount,
			BathroomCount:        it.House.BathroomCount,
			ConstructionType:     entities.ConstructionType(it.House.ConstructionType),
			MaterialGrade:        entities.MaterialGrade(it.House.MaterialGrade),
			SoilCondition:        entities.SoilCondition(it.House.SoilCondition),
			AccessCondition:      entities.AccessCondition(it.House.AccessCondition),
			NoiseRestriction:     entities.ParseTriState(it.House.NoiseRestriction),
			PumpTruckRestriction: entities.ParseTriState(it.House.PumpTruckRestriction),
			UrbanArea:            entities.ParseTriState(it.House.UrbanArea),
			WinterConstruction:   entities.ParseTriState(it.House.WinterConstruction),
		},
	}
}

func toEstimationRecordItem(e entities.EstimationRecord) estimationRecordItem {
	res := e.Result
	it := estimationRecordItem{
		ID:        e.ID,
		CreatedAt: formatTime(e.CreatedAt),
		Result: estimationItem{
			TotalCostKRW:      res.TotalCostKRW,
			TotalDurationDays: res.TotalDurationDays,
			CostLower:         res.CostConfidenceInterval.Lower,
			CostUpper:         res.CostConfidenceInterval.Upper,
			DurationLower:     res.DurationConfidenceInterval.Lower,
			DurationUpper:     res.DurationConfidenceInterval.Upper,
			Source:            string(res.Source),
			Input:             toRequestItem(res.InputEchoed),
			Explanation:       res.Explanation,
			Message:           res.Message,
			FallbackReason:    string(res.FallbackReason),
		},
	}
	if res.ModelInfo != nil {
		it.Result.ModelInfo = &modelInfoItem{
			Name:         res.ModelInfo.Name,
			Version:      res.ModelInfo.Version,
			Accuracy:     res.ModelInfo.Accuracy,
			TrainingDate: res.ModelInfo.TrainingDate,
		}
	}
	return it
}

func fromEstimationRecordItem(it estimationRecordItem) entities.EstimationRecord {
	res := it.Result
	out := entities.EstimationRecord{
		ID:        it.ID,
		CreatedAt: parseTime(it.CreatedAt),
		Result: entities.EstimationResult{
			TotalCostKRW:               res.TotalCostKRW,
			TotalDurationDays:          res.TotalDurationDays,
			CostConfidenceInterval:     entities.ConfidenceInterval{Lower: res.CostLower, Upper: res.CostUpper},
			DurationConfidenceInterval: entities.ConfidenceInterval{Lower: res.DurationLower, Upper: res.DurationUpper},
			Source:                     entities.EstimateSource(res.Source),
			InputEchoed:                fromRequestItem(res.Input),
			Explanation:                res.Explanation,
			Message:                    res.Message,
			FallbackReason:             entities.FallbackReason(res.FallbackReason),
		},
	}
	if res.ModelInfo != nil {
		out.Result.ModelInfo = &entities.ModelInfo{
			Name:         res.ModelInfo.Name,
			Version:      res.ModelInfo.Version,
			Accuracy:     res.ModelInfo.Accuracy,
			TrainingDate: res.ModelInfo.TrainingDate,
		}
	}
	return out
}

func toRequestItem(r entities.EstimationRequest) requestItem {
	return requestItem{
		StartDate:            formatDate(r.StartDate),
		Size:                 r.SizePyeong,
		FloorCount:           r.FloorCount,
		RoomCount:            r.RoomCount,
		BathroomCount:        r.BathroomCount,
		ConstructionType:     string(r.ConstructionType),
		MaterialGrade:        string(r.MaterialGrade),
		SoilCondition:        string(r.SoilCondition),
		AccessCondition:      string(r.AccessCondition),
		NoiseRestriction:     r.NoiseRestriction,
		PumpTruckRestriction: r.PumpTruckRestriction,
		UrbanArea:            r.UrbanArea,
		WinterConstruction:   r.WinterConstruction,
		ConditionTags:        r.ConditionTags,
	}
}

func fromRequestItem(it requestItem) entities.EstimationRequest {
	return entities.EstimationRequest{
		StartDate:            parseDate(it.StartDate),
		SizePyeong:           it.Size,
		FloorCount:           it.FloorCount,
		RoomCount:            it.RoomCount,
		BathroomCount:        it.BathroomCount,
		ConstructionType:     entities.ConstructionType(it.ConstructionType),
		MaterialGrade:        entities.MaterialGrade(it.MaterialGrade),
		SoilCondition:        entities.SoilCondition(it.SoilCondition),
		AccessCondition:      entities.AccessCondition(it.AccessCondition),
		NoiseRestriction:     it.NoiseRestriction,
		PumpTruckRestriction: it.PumpTruckRestriction,
		UrbanArea:            it.UrbanArea,
		WinterConstruction:   it.WinterConstruction,
		ConditionTags:        it.ConditionTags,
	}
}

func fromUserHistoryItem(it userHistoryItem) entities.UserHistory {
	h := entities.UserHistory{
		UserID:         it.UserID,
		HouseData:      make([]entities.HouseRecord, 0, len(it.HouseData)),
		EstimationData: make([]entities.EstimationRecord, 0, len(it.EstimationData)),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	for _, rec := range it.HouseData {
		h.HouseData = append(h.HouseData, fromHouseRecordItem(rec))
	}
	for _, rec := range it.EstimationData {
		h.EstimationData = append(h.EstimationData, fromEstimationRecordItem(rec))
	}
	return h
}
