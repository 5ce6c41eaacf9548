/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/suparena/appdata/container"
)

func getTestContainer(t *testing.T) *Container {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	region := os.Getenv("AWS_REGION")
	tableName := os.Getenv("AWS_DDB_TABLE")

	if tableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping DynamoDB tests")
	}

	c, err := New(awsAccessKey, awsSecretKey, region, tableName, "appdata-test")
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	return c
}

func TestArgumentValidation(t *testing.T) {
	if _, err := New("", "", "us-east-1", "", "ns"); err == nil {
		t.Error("Expected error for empty table name")
	}
	if _, err := New("", "", "us-east-1", "table", ""); err == nil {
		t.Error("Expected error for empty namespace")
	}
	if _, err := NewWithClient(nil, "table", "ns"); err == nil {
		t.Error("Expected error for nil client")
	}
}

func TestScalarRoundTrip(t *testing.T) {
	c := getTestContainer(t)

	if err := c.Set("theme", container.ScalarValue(`"dark"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	defer c.Remove("theme")

	v, ok, err := c.Get("theme")
	if err != nil || !ok {
		t.Fatalf("Get failed: present=%v err=%v", ok, err)
	}
	if v.IsComposite() || v.Scalar() != `"dark"` {
		t.Errorf("Scalar did not round-trip: %+v", v)
	}
}

func TestCompositeRoundTrip(t *testing.T) {
	c := getTestContainer(t)

	err := c.Set("window", container.CompositeValue(map[string]string{"w": "800", "h": "600"}))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	defer c.Remove("window")

	v, ok, err := c.Get("window")
	if err != nil || !ok {
		t.Fatalf("Get failed: present=%v err=%v", ok, err)
	}
	if !v.IsComposite() {
		t.Fatal("Composite kind lost across DynamoDB round-trip")
	}
	if w, _ := v.Sub("w"); w != "800" {
		t.Errorf("Expected sub-key w=800, got %q", w)
	}
}

func TestRemoveReportsPresence(t *testing.T) {
	c := getTestContainer(t)

	c.Set("ephemeral", container.ScalarValue("1"))

	removed, err := c.Remove("ephemeral")
	if err != nil || !removed {
		t.Fatalf("Remove of present key: removed=%v err=%v", removed, err)
	}

	removed, err = c.Remove("ephemeral")
	if err != nil {
		t.Fatalf("Remove of missing key errored: %v", err)
	}
	if removed {
		t.Error("Remove of missing key must report false")
	}
}
