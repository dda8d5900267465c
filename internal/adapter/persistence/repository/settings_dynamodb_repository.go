package repository

import (
	"context"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"

	// Fixed PKs: the settings table holds exactly one row per kind.
	paymentSettingsKey = "payment_settings"
	pixelSettingsKey   = "pixel_settings"
)

type paymentSettingsItem struct {
	ID                   string `dynamodbav:"id"`
	GatewayEnabled       bool   `dynamodbav:"gateway_enabled"`
	SandboxMode          bool   `dynamodbav:"sandbox_mode"`
	SandboxAPIKey        string `dynamodbav:"sandbox_api_key,omitempty"`
	ProductionAPIKey     string `dynamodbav:"production_api_key,omitempty"`
	AllowPix             bool   `dynamodbav:"allow_pix"`
	AllowCreditCard      bool   `dynamodbav:"allow_credit_card"`
	ManualCardProcessing bool   `dynamodbav:"manual_card_processing"`
	ManualCardStatus     string `dynamodbav:"manual_card_status,omitempty"`
	ManualPixPage        bool   `dynamodbav:"manual_pix_page"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

type pixelSettingsItem struct {
	ID                 string `dynamodbav:"id"`
	GooglePixelID      string `dynamodbav:"google_pixel_id,omitempty"`
	GooglePixelEnabled bool   `dynamodbav:"google_pixel_enabled"`
	MetaPixelID        string `dynamodbav:"meta_pixel_id,omitempty"`
	MetaPixelEnabled   bool   `dynamodbav:"meta_pixel_enabled"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the singleton configuration rows.
//
// Table requirements:
//   - PK: id (string); rows "payment_settings" and "pixel_settings".

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetPaymentSettings(ctx context.Context) (entities.PaymentSettings, bool, error) {
	item, err := r.getItem(ctx, paymentSettingsKey)
	if err != nil {
		return entities.PaymentSettings{}, false, err
	}
	if item == nil {
		return entities.PaymentSettings{}, false, nil
	}

	var it paymentSettingsItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.PaymentSettings{}, false, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentSettings{
		GatewayEnabled:       it.GatewayEnabled,
		SandboxMode:          it.SandboxMode,
		SandboxAPIKey:        it.SandboxAPIKey,
		ProductionAPIKey:     it.ProductionAPIKey,
		AllowPix:             it.AllowPix,
		AllowCreditCard:      it.AllowCreditCard,
		ManualCardProcessing: it.ManualCardProcessing,
		ManualCardStatus:     entities.ManualCardStatus(it.ManualCardStatus),
		ManualPixPage:        it.ManualPixPage,
		UpdatedAt:            updatedAt,
	}, true, nil
}

func (r *SettingsDynamoRepository) SavePaymentSettings(ctx context.Context, s entities.PaymentSettings) (entities.PaymentSettings, error) {
	it := paymentSettingsItem{
		ID:                   paymentSettingsKey,
		GatewayEnabled:       s.GatewayEnabled,
		SandboxMode:          s.SandboxMode,
		SandboxAPIKey:        s.SandboxAPIKey,
		ProductionAPIKey:     s.ProductionAPIKey,
		AllowPix:             s.AllowPix,
		AllowCreditCard:      s.AllowCreditCard,
		ManualCardProcessing: s.ManualCardProcessing,
		ManualCardStatus:     string(s.ManualCardStatus),
		ManualPixPage:        s.ManualPixPage,
		UpdatedAt:            s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := r.putItem(ctx, it); err != nil {
		return entities.PaymentSettings{}, err
	}
	return s, nil
}

func (r *SettingsDynamoRepository) GetPixelSettings(ctx context.Context) (entities.PixelSettings, bool, error) {
	item, err := r.getItem(ctx, pixelSettingsKey)
	if err != nil {
		return entities.PixelSettings{}, false, err
	}
	if item == nil {
		return entities.PixelSettings{}, false, nil
	}

	var it pixelSettingsItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.PixelSettings{}, false, err
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PixelSettings{
		GooglePixelID:      it.GooglePixelID,
		GooglePixelEnabled: it.GooglePixelEnabled,
		MetaPixelID:        it.MetaPixelID,
		MetaPixelEnabled:   it.MetaPixelEnabled,
		UpdatedAt:          updatedAt,
	}, true, nil
}

func (r *SettingsDynamoRepository) SavePixelSettings(ctx context.Context, s entities.PixelSettings) (entities.PixelSettings, error) {
	it := pixelSettingsItem{
		ID:                 pixelSettingsKey,
		GooglePixelID:      s.GooglePixelID,
		GooglePixelEnabled: s.GooglePixelEnabled,
		MetaPixelID:        s.MetaPixelID,
		MetaPixelEnabled:   s.MetaPixelEnabled,
		UpdatedAt:          s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if err := r.putItem(ctx, it); err != nil {
		return entities.PixelSettings{}, err
	}
	return s, nil
}

func (r *SettingsDynamoRepository) getItem(ctx context.Context, key string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (r *SettingsDynamoRepository) putItem(ctx context.Context, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
