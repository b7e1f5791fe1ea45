package repository

import (
	"context"
	"errors"
	"time"

	"vendor_listing/internal/domain/entities"
	"vendor_listing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProfilesTableName = "profiles"
	profilesStatusIndex      = "profile_status-index"
)

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
}

type packageItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description"`
	Price       string   `dynamodbav:"price"`
	Inclusions  []string `dynamodbav:"inclusions"`
}

type profileItem struct {
	ID                   string            `dynamodbav:"id"`
	BusinessName         string            `dynamodbav:"business_name"`
	Category             string            `dynamodbav:"category"`
	Subcategory          string            `dynamodbav:"subcategory"`
	RegistrationID       string            `dynamodbav:"registration_id"`
	Description          string            `dynamodbav:"description"`
	Services             []serviceItem     `dynamodbav:"services"`
	PricingPackages      []packageItem     `dynamodbav:"pricing_packages"`
	Specialties          []string          `dynamodbav:"specialties"`
	Address              string            `dynamodbav:"address"`
	CoverageAreas        []string          `dynamodbav:"coverage_areas"`
	Latitude             *float64          `dynamodbav:"latitude,omitempty"`
	Longitude            *float64          `dynamodbav:"longitude,omitempty"`
	PortfolioDescription string            `dynamodbav:"portfolio_description"`
	GalleryImages        []string          `dynamodbav:"gallery_images"`
	FeaturedImage        string            `dynamodbav:"featured_image"`
	Website              string            `dynamodbav:"website"`
	SocialLinks          map[string]string `dynamodbav:"social_links"`
	YearsExperience      *int              `dynamodbav:"years_experience,omitempty"`
	TeamSize             *int              `dynamodbav:"team_size,omitempty"`
	ProfileStatus        string            `dynamodbav:"profile_status"`
	ReviewNote           string            `dynamodbav:"review_note,omitempty"`
	CreatedAt            string            `dynamodbav:"created_at"`
	UpdatedAt            string            `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists vendor profiles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: profile_status-index (PK: profile_status)
//
// Save is an upsert: the wizard saves the same draft many times.

type ProfileDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client, tableName string) *ProfileDynamoRepository {
	return newProfileDynamoRepository(ddb, tableName)
}

func newProfileDynamoRepository(ddb dynamoAPI, tableName string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: valueOrDefault(tableName, defaultProfilesTableName),
	}
}

// Save writes p only while the stored status still equals expected; an empty expected
// status means the profile must not exist yet. A failed condition yields a zero-value profile.
func (r *ProfileDynamoRepository) Save(ctx context.Context, p entities.Profile, expected entities.ProfileStatus) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
	}

	in := &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if expected != "" {
		in.ConditionExpression = aws.String("#status = :expected")
		in.ExpressionAttributeNames = map[string]string{"#status": "profile_status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		}
	}

	if _, err = r.ddb.PutItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) ListByStatus(ctx context.Context, status entities.ProfileStatus) ([]entities.Profile, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profilesStatusIndex),
		KeyConditionExpression: aws.String("profile_status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})

	items := make([]entities.Profile, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it profileItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromProfileItem(it))
		}
	}
	return items, nil
}

// UpdateStatus only writes when the stored status still equals from. A failed condition
// yields a zero-value profile.
func (r *ProfileDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ProfileStatus, note string) (entities.Profile, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #note = :note, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":note":       &types.AttributeValueMemberS{Value: note},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "profile_status",
			"#note":       "review_note",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func toProfileItem(p entities.Profile) profileItem {
	services := make([]serviceItem, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, serviceItem(s))
	}
	packages := make([]packageItem, 0, len(p.PricingPackages))
	for _, pkg := range p.PricingPackages {
		packages = append(packages, packageItem(pkg))
	}
	return profileItem{
		ID:                   p.ID,
		BusinessName:         p.BusinessName,
		Category:             p.Category,
		Subcategory:          p.Subcategory,
		RegistrationID:       p.RegistrationID,
		Description:          p.Description,
		Services:             services,
		PricingPackages:      packages,
		Specialties:          []string(p.Specialties),
		Address:              p.Address,
		CoverageAreas:        p.CoverageAreas,
		Latitude:             p.Latitude,
		Longitude:            p.Longitude,
		PortfolioDescription: p.PortfolioDescription,
		GalleryImages:        p.GalleryImages,
		FeaturedImage:        p.FeaturedImage,
		Website:              p.Website,
		SocialLinks:          p.SocialLinks,
		YearsExperience:      p.YearsExperience,
		TeamSize:             p.TeamSize,
		ProfileStatus:        string(p.ProfileStatus),
		ReviewNote:           p.ReviewNote,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	services := make([]entities.Service, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.Service(s))
	}
	packages := make([]entities.PricingPackage, 0, len(it.PricingPackages))
	for _, pkg := range it.PricingPackages {
		packages = append(packages, entities.PricingPackage(pkg))
	}
	return entities.Profile{
		ID:                   it.ID,
		BusinessName:         it.BusinessName,
		Category:             it.Category,
		Subcategory:          it.Subcategory,
		RegistrationID:       it.RegistrationID,
		Description:          it.Description,
		Services:             services,
		PricingPackages:      packages,
		Specialties:          entities.SpecialtySet(it.Specialties),
		Address:              it.Address,
		CoverageAreas:        it.CoverageAreas,
		Latitude:             it.Latitude,
		Longitude:            it.Longitude,
		PortfolioDescription: it.PortfolioDescription,
		GalleryImages:        it.GalleryImages,
		FeaturedImage:        it.FeaturedImage,
		Website:              it.Website,
		SocialLinks:          it.SocialLinks,
		YearsExperience:      it.YearsExperience,
		TeamSize:             it.TeamSize,
		ProfileStatus:        entities.ProfileStatus(it.ProfileStatus),
		ReviewNote:           it.ReviewNote,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}.Normalize()
}
