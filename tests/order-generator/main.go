package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type LineItem struct {
	VariantID    string `json:"variant_id"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	LineDiscount int64  `json:"line_discount"`
}

type OrderCreated struct {
	OrderID       string     `json:"order_id"`
	CustomerID    string     `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	Items         []LineItem `json:"items"`
	OrderDiscount int64      `json:"order_discount"`
	ShippingFee   int64      `json:"shipping_fee"`
	CreatedAt     int64      `json:"created_at"`
}

var customerNames = []string{
	"Nguyen Van An", "Tran Thi Binh", "Le Minh Chau",
	"Pham Quoc Dat", "Hoang Thu Ha", "Vu Duc Long",
}

func generateRandomOrder() OrderCreated {
	items := make([]LineItem, 0, rand.Intn(3)+1)
	for i := 0; i < cap(items); i++ {
		items = append(items, LineItem{
			VariantID:    uuid.NewString(),
			Quantity:     rand.Intn(3) + 1,
			UnitPrice:    int64(rand.Intn(50)+1) * 10000,
			LineDiscount: int64(rand.Intn(3)) * 10000,
		})
	}

	return OrderCreated{
		OrderID:       uuid.NewString(),
		CustomerID:    fmt.Sprintf("customer_%d", rand.Intn(20)),
		CustomerName:  customerNames[rand.Intn(len(customerNames))],
		Items:         items,
		OrderDiscount: int64(rand.Intn(5)) * 10000,
		ShippingFee:   int64(rand.Intn(4)+1) * 10000,
		CreatedAt:     time.Now().Unix(),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "orders.created",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.OrderID)
		case <-ctx.Done():
			return
		}
	}
}
