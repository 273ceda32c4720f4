package repository

import (
	"context"
	"errors"
	"testing"

	"marblecraft/internal/domain/catalog"
	"marblecraft/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeScanner struct {
	pages map[string][][]map[string]types.AttributeValue
	calls map[string]int
	err   error
}

func (f *fakeScanner) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	table := aws.ToString(in.TableName)
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	i := f.calls[table]
	f.calls[table]++

	pages := f.pages[table]
	if i >= len(pages) {
		return &dynamodb.ScanOutput{}, nil
	}
	out := &dynamodb.ScanOutput{Items: pages[i]}
	if i < len(pages)-1 {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "next"}}
	}
	return out, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestCatalogDynamoSource_LoadServices(t *testing.T) {
	svcs := catalog.EmbeddedServices()
	scanner := &fakeScanner{pages: map[string][][]map[string]types.AttributeValue{
		"services": {
			{mustMarshal(t, serviceItem{Service: svcs[2], Position: 2}), mustMarshal(t, serviceItem{Service: svcs[0], Position: 0})},
			{mustMarshal(t, serviceItem{Service: svcs[1], Position: 1})},
		},
	}}

	src := NewCatalogDynamoSource(scanner, "", "")
	got, err := src.LoadServices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scanner.calls["services"] != 2 {
		t.Fatalf("expected 2 scan pages, got %d", scanner.calls["services"])
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 services, got %d", len(got))
	}
	for i, want := range []string{"marble_flooring", "marble_countertops", "marble_walls"} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
	if got[0].BasePrice != 25 || got[0].Category != entities.CategoryFlooring || len(got[0].Features) != 6 {
		t.Fatalf("unexpected decoded service: %+v", got[0])
	}
}

func TestCatalogDynamoSource_LoadDesigns(t *testing.T) {
	designs := catalog.EmbeddedDesigns()
	scanner := &fakeScanner{pages: map[string][][]map[string]types.AttributeValue{
		"marble_designs": {
			{mustMarshal(t, designItem{MarbleDesign: designs[4], Position: 4}), mustMarshal(t, designItem{MarbleDesign: designs[1], Position: 1})},
		},
	}}

	src := NewCatalogDynamoSource(scanner, "services", "marble_designs")
	got, err := src.LoadDesigns(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "calacatta_gold" || got[1].ID != "nero_marquina" {
		t.Fatalf("unexpected designs: %+v", got)
	}
	if got[1].PriceMultiplier != 1.5 {
		t.Fatalf("expected multiplier 1.5, got %v", got[1].PriceMultiplier)
	}
}

func TestCatalogDynamoSource_ScanError(t *testing.T) {
	src := NewCatalogDynamoSource(&fakeScanner{err: errors.New("throttled")}, "", "")

	if _, err := src.LoadServices(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if _, err := src.LoadDesigns(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStaticCatalogSource(t *testing.T) {
	src := NewStaticCatalogSource()
	svcs, err := src.LoadServices(context.Background())
	if err != nil || len(svcs) != 5 {
		t.Fatalf("unexpected services: %d %v", len(svcs), err)
	}
	designs, err := src.LoadDesigns(context.Background())
	if err != nil || len(designs) != 12 {
		t.Fatalf("unexpected designs: %d %v", len(designs), err)
	}
}
