package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"checkout-service/internal/domain/entities"
	"checkout-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName   = "orders"
	ordersPaymentMethodIndex = "payment_method-index"
	ordersStatusIndex        = "status-index"
)

// orderCardItem holds the displayable card remainder only; the PAN and
// CVV are never written to the table.
type orderCardItem struct {
	LastFour    string `dynamodbav:"last_four"`
	ExpiryMonth string `dynamodbav:"expiry_month"`
	ExpiryYear  string `dynamodbav:"expiry_year"`
	Brand       string `dynamodbav:"brand"`
}

type orderPixItem struct {
	QRCode       string `dynamodbav:"qr_code"`
	QRCodeBase64 string `dynamodbav:"qr_code_base64,omitempty"`
	TicketURL    string `dynamodbav:"ticket_url,omitempty"`
	ExpirationAt string `dynamodbav:"expiration_at"`
}

type orderAddressItem struct {
	CEP          string `dynamodbav:"cep"`
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Complement   string `dynamodbav:"complement,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
}

type orderItem struct {
	ID               string            `dynamodbav:"id"`
	CustomerName     string            `dynamodbav:"customer_name"`
	CustomerEmail    string            `dynamodbav:"customer_email"`
	CustomerCPF      string            `dynamodbav:"customer_cpf"`
	CustomerPhone    string            `dynamodbav:"customer_phone"`
	Address          *orderAddressItem `dynamodbav:"address,omitempty"`
	ProductID        string            `dynamodbav:"product_id"`
	ProductName      string            `dynamodbav:"product_name"`
	ProductPrice     string            `dynamodbav:"product_price"`
	PaymentMethod    string            `dynamodbav:"payment_method"`
	PaymentStatus    string            `dynamodbav:"payment_status"`
	PaymentID        string            `dynamodbav:"payment_id,omitempty"`
	Card             *orderCardItem    `dynamodbav:"card,omitempty"`
	Pix              *orderPixItem     `dynamodbav:"pix,omitempty"`
	OrderDate        string            `dynamodbav:"order_date"`
	DeviceType       string            `dynamodbav:"device_type"`
	IsDigitalProduct bool              `dynamodbav:"is_digital_product"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_method-index (PK: payment_method)
//   - GSI: status-index (PK: payment_status)
//
// The conditional create doubles as the idempotency barrier: the order ID
// is the checkout idempotency key, so a replay fails the condition and is
// reported as interfaces.ErrAlreadyExists.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	var orders []entities.Order
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersPaymentMethodIndex, "payment_method", string(method))
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersStatusIndex, "payment_status", string(status))
}

func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Order, error) {
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

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#status": "payment_status"},
			map[string]string{"#id": "id"},
		),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *OrderDynamoRepository) DeleteByPaymentMethod(ctx context.Context, method entities.PaymentMethod) ([]entities.Order, error) {
	orders, err := r.ListByPaymentMethod(ctx, method)
	if err != nil {
		return nil, err
	}

	deleted := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if err := r.Delete(ctx, o.ID); err != nil {
			// Report what was removed so the caller can still cancel
			// the linked gateway payments.
			return deleted, err
		}
		deleted = append(deleted, o)
	}
	return deleted, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:               o.ID,
		CustomerName:     o.Customer.Name,
		CustomerEmail:    o.Customer.Email,
		CustomerCPF:      o.Customer.CPF,
		CustomerPhone:    o.Customer.Phone,
		ProductID:        o.ProductID,
		ProductName:      o.ProductName,
		ProductPrice:     floatToString(o.ProductPrice),
		PaymentMethod:    string(o.PaymentMethod),
		PaymentStatus:    string(o.PaymentStatus),
		PaymentID:        o.PaymentID,
		OrderDate:        o.OrderDate.UTC().Format(time.RFC3339Nano),
		DeviceType:       string(o.DeviceType),
		IsDigitalProduct: o.IsDigitalProduct,
	}
	if a := o.Customer.Address; a != nil {
		it.Address = &orderAddressItem{
			CEP:          a.CEP,
			Street:       a.Street,
			Number:       a.Number,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
		}
	}
	if c := o.CardDetails; c != nil {
		it.Card = &orderCardItem{
			LastFour:    c.LastFour,
			ExpiryMonth: c.ExpiryMonth,
			ExpiryYear:  c.ExpiryYear,
			Brand:       c.Brand,
		}
	}
	if p := o.PixDetails; p != nil {
		it.Pix = &orderPixItem{
			QRCode:       p.QRCode,
			QRCodeBase64: p.QRCodeBase64,
			TicketURL:    p.TicketURL,
			ExpirationAt: p.ExpirationAt.UTC().Format(time.RFC3339Nano),
		}
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	orderDate, _ := time.Parse(time.RFC3339Nano, it.OrderDate)
	price, _ := strconv.ParseFloat(it.ProductPrice, 64)

	o := entities.Order{
		ID: it.ID,
		Customer: entities.CustomerInfo{
			Name:  it.CustomerName,
			Email: it.CustomerEmail,
			CPF:   it.CustomerCPF,
			Phone: it.CustomerPhone,
		},
		ProductID:        it.ProductID,
		ProductName:      it.ProductName,
		ProductPrice:     price,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		PaymentID:        it.PaymentID,
		OrderDate:        orderDate,
		DeviceType:       entities.DeviceType(it.DeviceType),
		IsDigitalProduct: it.IsDigitalProduct,
	}
	if a := it.Address; a != nil {
		o.Customer.Address = &entities.Address{
			CEP:          a.CEP,
			Street:       a.Street,
			Number:       a.Number,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
		}
	}
	if c := it.Card; c != nil {
		o.CardDetails = &entities.CardDetails{
			LastFour:    c.LastFour,
			ExpiryMonth: c.ExpiryMonth,
			ExpiryYear:  c.ExpiryYear,
			Brand:       c.Brand,
		}
	}
	if p := it.Pix; p != nil {
		expiration, _ := time.Parse(time.RFC3339Nano, p.ExpirationAt)
		o.PixDetails = &entities.PixDetails{
			QRCode:       p.QRCode,
			QRCodeBase64: p.QRCodeBase64,
			TicketURL:    p.TicketURL,
			ExpirationAt: expiration,
		}
	}
	return o
}
