package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/productinfo"
	"github.com/redditart/commissioner/pkg/models"
)

// ProductService owns ProductInfo rows — one per successful task.
type ProductService struct {
	client *ent.Client
}

// NewProductService creates a new ProductService
func NewProductService(client *ent.Client) *ProductService {
	return &ProductService{client: client}
}

// BuildProductURL templates the affiliate storefront URL from the hosted
// image and template id.
func BuildProductURL(baseURL, templateID, imageURL, affiliateID string) string {
	q := url.Values{
		"template": {templateID},
		"image":    {imageURL},
	}
	if affiliateID != "" {
		q.Set("aff", affiliateID)
	}
	return fmt.Sprintf("%s/product/create?%s", baseURL, q.Encode())
}

// CreateProductRequest carries the commission_complete stage's output.
type CreateProductRequest struct {
	TaskID        string
	DonationID    string
	PostID        string
	Theme         string
	ImageTitle    string
	ImageURL      string
	ProductURL    string
	TemplateID    string
	Model         string
	PromptVersion string
	ImageQuality  string
}

// Create inserts the product row. task_id is unique, so a resumed task that
// already produced its product gets ErrAlreadyExists and skips.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ent.ProductInfo, error) {
	if req.TaskID == "" {
		return nil, NewValidationError("task_id", "is required")
	}
	if req.ImageURL == "" {
		return nil, NewValidationError("image_url", "is required")
	}

	create := s.client.ProductInfo.Create().
		SetTaskID(req.TaskID).
		SetPostID(req.PostID).
		SetTheme(req.Theme).
		SetImageTitle(req.ImageTitle).
		SetImageURL(req.ImageURL).
		SetProductURL(req.ProductURL).
		SetTemplateID(req.TemplateID).
		SetModel(req.Model).
		SetPromptVersion(req.PromptVersion)
	if req.ImageQuality != "" {
		create.SetImageQuality(productinfo.ImageQuality(req.ImageQuality))
	}
	if req.DonationID != "" {
		create.SetDonationID(req.DonationID)
	}

	product, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// GetByTaskID fetches the product a task produced.
func (s *ProductService) GetByTaskID(ctx context.Context, taskID string) (*ent.ProductInfo, error) {
	p, err := s.client.ProductInfo.Query().
		Where(productinfo.TaskIDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// GetByDonationID fetches the product commissioned by a donation.
func (s *ProductService) GetByDonationID(ctx context.Context, donationID string) (*ent.ProductInfo, error) {
	p, err := s.client.ProductInfo.Query().
		Where(productinfo.DonationIDEQ(donationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// List returns products newest first.
func (s *ProductService) List(ctx context.Context, limit, offset int) ([]*ent.ProductInfo, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.client.ProductInfo.Query().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	products, err := s.client.ProductInfo.Query().
		Order(ent.Desc(productinfo.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// ProductSummary converts a product row to its public view.
func ProductSummary(p *ent.ProductInfo) models.ProductSummary {
	s := models.ProductSummary{
		ID:            p.ID,
		TaskID:        p.TaskID,
		PostID:        p.PostID,
		Theme:         p.Theme,
		ImageTitle:    p.ImageTitle,
		ImageURL:      p.ImageURL,
		ProductURL:    p.ProductURL,
		TemplateID:    p.TemplateID,
		Model:         p.Model,
		PromptVersion: p.PromptVersion,
		ImageQuality:  string(p.ImageQuality),
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.DonationID != nil {
		s.DonationID = *p.DonationID
	}
	return s
}
