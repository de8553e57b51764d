package sevdesk_test

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"sevdesk-mcp/internal/sevdesk"
)

// ExampleNewClient demonstrates basic usage of the sevDesk client.
func ExampleNewClient() {
	// Load .env file (using godotenv in main)
	// This should be done in your main() function:
	//
	// if err := godotenv.Load(); err != nil {
	//     log.Printf("Warning: Could not load .env file: %v", err)
	// }

	client, err := sevdesk.NewClient(sevdesk.Config{
		Token: "your-api-token",
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// List the first ten contacts
	q := url.Values{}
	q.Set("limit", "10")
	contacts, err := client.ListContacts(ctx, q)
	if err != nil {
		log.Fatalf("Failed to list contacts: %v", err)
	}

	fmt.Printf("Contacts: %s\n", contacts)
}
