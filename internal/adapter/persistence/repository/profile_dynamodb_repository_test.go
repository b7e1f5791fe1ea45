package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"vendor_listing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records the last request of each kind and replays canned responses.
type fakeDynamo struct {
	put    *dynamodb.PutItemInput
	get    *dynamodb.GetItemInput
	update *dynamodb.UpdateItemInput
	query  []*dynamodb.QueryInput

	getOut    *dynamodb.GetItemOutput
	updateOut *dynamodb.UpdateItemOutput
	pages     []*dynamodb.QueryOutput
	err       error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.put = in
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.get = in
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, f.err
	}
	return f.getOut, f.err
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.query = append(f.query, in)
	if f.err != nil {
		return nil, f.err
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.update = in
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, f.err
	}
	return f.updateOut, f.err
}

func sampleProfile() entities.Profile {
	lat, years := -33.86, 8
	return entities.Profile{
		ID:              "p-1",
		BusinessName:    "Golden Hour Studio",
		Category:        "Photography",
		Services:        []entities.Service{{ID: "s-1", Name: "Full day", Price: "$3,000"}},
		PricingPackages: []entities.PricingPackage{{ID: "k-1", Name: "Gold", Inclusions: []string{"Album"}}},
		Specialties:     entities.SpecialtySet{"Modern", "Rustic"},
		CoverageAreas:   []string{"Sydney"},
		Latitude:        &lat,
		GalleryImages:   []string{"blob:a"},
		SocialLinks:     map[string]string{"instagram": "@goldenhour"},
		YearsExperience: &years,
		ProfileStatus:   entities.ProfileStatusPendingReview,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 1, 3, 3, 4, 5, 0, time.UTC),
	}
}

func marshalProfile(t *testing.T, p entities.Profile) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestProfileDynamoRepository_Save(t *testing.T) {
	t.Run("new profile must not exist", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := newProfileDynamoRepository(fake, "")

		if _, err := repo.Save(context.Background(), sampleProfile(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(fake.put.TableName) != defaultProfilesTableName {
			t.Fatalf("expected default table, got %s", aws.ToString(fake.put.TableName))
		}
		if got := aws.ToString(fake.put.ConditionExpression); got != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected condition: %q", got)
		}
		status, ok := fake.put.Item["profile_status"].(*types.AttributeValueMemberS)
		if !ok || status.Value != "pending_review" {
			t.Fatalf("unexpected status attribute: %#v", fake.put.Item["profile_status"])
		}
		if _, ok := fake.put.Item["team_size"]; ok {
			t.Fatalf("nil numbers must be omitted")
		}
	})

	t.Run("existing profile conditioned on stored status", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := newProfileDynamoRepository(fake, "profiles-test")

		saved, err := repo.Save(context.Background(), sampleProfile(), entities.ProfileStatusIncomplete)
		if err != nil || saved.ID != "p-1" {
			t.Fatalf("unexpected result: %+v, %v", saved, err)
		}
		if got := aws.ToString(fake.put.ConditionExpression); got != "#status = :expected" {
			t.Fatalf("unexpected condition: %q", got)
		}
		expected, ok := fake.put.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberS)
		if !ok || expected.Value != "incomplete" {
			t.Fatalf("unexpected expected status: %#v", fake.put.ExpressionAttributeValues)
		}
	})

	t.Run("status changed underneath", func(t *testing.T) {
		fake := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		repo := newProfileDynamoRepository(fake, "")

		saved, err := repo.Save(context.Background(), sampleProfile(), entities.ProfileStatusPendingReview)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if saved.ID != "" {
			t.Fatalf("expected zero value on failed condition, got %+v", saved)
		}
	})

	t.Run("client error", func(t *testing.T) {
		fake := &fakeDynamo{err: errors.New("throttled")}
		repo := newProfileDynamoRepository(fake, "")

		if _, err := repo.Save(context.Background(), sampleProfile(), ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestProfileDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		repo := newProfileDynamoRepository(&fakeDynamo{}, "profiles-test")
		p, err := repo.GetByID(context.Background(), "p-1")
		if err != nil || p.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", p, err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		want := sampleProfile()
		fake := &fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: marshalProfile(t, want)}}
		repo := newProfileDynamoRepository(fake, "profiles-test")

		got, err := repo.GetByID(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !aws.ToBool(fake.get.ConsistentRead) {
			t.Fatalf("expected consistent read")
		}
		if got.BusinessName != want.BusinessName || got.Services[0].ID != "s-1" || got.PricingPackages[0].Inclusions[0] != "Album" {
			t.Fatalf("unexpected profile: %+v", got)
		}
		if got.Latitude == nil || *got.Latitude != -33.86 || got.Longitude != nil || got.TeamSize != nil {
			t.Fatalf("nullable numbers not preserved: %+v", got)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || got.ProfileStatus != entities.ProfileStatusPendingReview {
			t.Fatalf("unexpected metadata: %+v", got)
		}
		if !got.Specialties.Contains("Rustic") {
			t.Fatalf("unexpected specialties: %v", got.Specialties)
		}
	})
}

func TestProfileDynamoRepository_ListByStatus(t *testing.T) {
	first, second := sampleProfile(), sampleProfile()
	second.ID = "p-2"
	fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{marshalProfile(t, first)},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "p-1"}},
		},
		{Items: []map[string]types.AttributeValue{marshalProfile(t, second)}},
	}}
	repo := newProfileDynamoRepository(fake, "")

	got, err := repo.ListByStatus(context.Background(), entities.ProfileStatusPendingReview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].ID != "p-2" {
		t.Fatalf("expected both pages, got %+v", got)
	}
	if len(fake.query) != 2 || aws.ToString(fake.query[0].IndexName) != profilesStatusIndex {
		t.Fatalf("unexpected queries: %d", len(fake.query))
	}
}

func TestProfileDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("condition failed", func(t *testing.T) {
		fake := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		repo := newProfileDynamoRepository(fake, "")

		p, err := repo.UpdateStatus(context.Background(), "p-1", entities.ProfileStatusPendingReview, entities.ProfileStatusLive, "")
		if err != nil || p.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", p, err)
		}
	})

	t.Run("other error", func(t *testing.T) {
		fake := &fakeDynamo{err: errors.New("throttled")}
		repo := newProfileDynamoRepository(fake, "")

		if _, err := repo.UpdateStatus(context.Background(), "p-1", entities.ProfileStatusPendingReview, entities.ProfileStatusLive, ""); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success", func(t *testing.T) {
		updated := sampleProfile()
		updated.ProfileStatus = entities.ProfileStatusIncomplete
		updated.ReviewNote = "more photos"
		fake := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalProfile(t, updated)}}
		repo := newProfileDynamoRepository(fake, "")

		p, err := repo.UpdateStatus(context.Background(), "p-1", entities.ProfileStatusPendingReview, entities.ProfileStatusIncomplete, "more photos")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ProfileStatus != entities.ProfileStatusIncomplete || p.ReviewNote != "more photos" {
			t.Fatalf("unexpected profile: %+v", p)
		}
		from := fake.update.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS)
		if from.Value != "pending_review" {
			t.Fatalf("expected condition on pending_review, got %s", from.Value)
		}
		names := fake.update.ExpressionAttributeNames
		if names["#status"] != "profile_status" || names["#id"] != "id" || len(names) != 4 {
			t.Fatalf("unexpected names: %v", fake.update.ExpressionAttributeNames)
		}
	})
}
