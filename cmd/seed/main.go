// Seeds the product catalog and optionally wipes cart line items.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/shreyat81/e-com-mart/internal/catalog"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	clearCart := flag.Bool("clear-cart", false, "also delete all cart line items")
	flag.Parse()

	uri := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	database := getEnv("MONGODB_DATABASE", "ecommart")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := catalog.ConnectMongoDB(ctx, uri, database)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}

	repo := catalog.NewMongoRepository(db)
	if err := repo.CreateIndexes(ctx); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	products := catalog.SeedProducts()
	if err := repo.ReplaceAll(ctx, products); err != nil {
		log.Fatalf("failed to seed products: %v", err)
	}
	log.Printf("seeded %d products into %s", len(products), database)

	if *clearCart {
		res, err := db.Collection("cart_items").DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Fatalf("failed to clear cart items: %v", err)
		}
		log.Printf("cleared %d cart items", res.DeletedCount)
	}
}
