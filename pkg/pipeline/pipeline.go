// Package pipeline executes the multi-stage artwork generation run for one
// claimed task: post selection, product design, image synthesis, stamping and
// hosting, and product creation. Stage outputs are persisted before the
// stage's success event, so a resumed task skips work that already happened.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/redditart/commissioner/ent"
	"github.com/redditart/commissioner/ent/pipelinetask"
	"github.com/redditart/commissioner/pkg/config"
	"github.com/redditart/commissioner/pkg/events"
	"github.com/redditart/commissioner/pkg/imagehost"
	"github.com/redditart/commissioner/pkg/llm"
	"github.com/redditart/commissioner/pkg/queue"
	"github.com/redditart/commissioner/pkg/reddit"
	"github.com/redditart/commissioner/pkg/services"
)

// uploadAttempts bounds image host retries within one pipeline attempt.
const uploadAttempts = 3

// topCommentLimit is how many comments feed the design prompt's summary.
const topCommentLimit = 5

// errCancelled signals the task was cancelled between stages.
var errCancelled = errors.New("task cancelled")

// permanentError marks a failure that must not be retried.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// PostSource is the slice of the social platform client the engine uses.
type PostSource interface {
	Hot(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
	GetPost(ctx context.Context, postID string) (*reddit.Post, error)
	TopComments(ctx context.Context, subreddit, postID string, limit int) ([]reddit.Comment, error)
}

// ProductDesigner produces the artwork concept for a post.
type ProductDesigner interface {
	DesignProduct(ctx context.Context, post llm.PostContext) (*llm.Design, error)
	PromptVersion() string
}

// ImageSynthesizer renders the design's image description.
type ImageSynthesizer interface {
	Generate(ctx context.Context, description string, quality llm.Quality) ([]byte, error)
	Model() string
}

// Deps wires the engine's collaborators.
type Deps struct {
	Client     *ent.Client
	Platform   PostSource
	Designer   ProductDesigner
	ImageGen   ImageSynthesizer
	Uploader   imagehost.Uploader
	Broker     *events.ProgressBroker
	Subreddits *services.SubredditService
	Products   *services.ProductService
	Tiers      *services.TierService
	Donations  *services.DonationService
	Upstream   config.UpstreamConfig
	BaseURL    string

	// CreatorMark is the text stamped onto finished artwork. Empty disables
	// stamping.
	CreatorMark string
}

// Engine runs pipeline tasks. It satisfies the queue's TaskExecutor.
type Engine struct {
	deps Deps
}

// NewEngine creates a pipeline engine.
func NewEngine(deps Deps) *Engine {
	return &Engine{deps: deps}
}

// Execute runs one task attempt end to end and classifies the outcome.
func (e *Engine) Execute(ctx context.Context, task *ent.PipelineTask) *queue.ExecutionResult {
	err := e.run(ctx, task)
	if err == nil {
		return &queue.ExecutionResult{Status: pipelinetask.StatusCompleted}
	}

	switch {
	case errors.Is(err, errCancelled), errors.Is(err, context.Canceled):
		return &queue.ExecutionResult{Status: pipelinetask.StatusCancelled, Err: err}
	case errors.Is(err, llm.ErrContentPolicy):
		return &queue.ExecutionResult{Status: pipelinetask.StatusFailed, Err: err}
	default:
		var perm *permanentError
		if errors.As(err, &perm) {
			return &queue.ExecutionResult{Status: pipelinetask.StatusFailed, Err: err}
		}
		// Network errors, upstream 5xx, rate limits, timeouts.
		return &queue.ExecutionResult{Status: pipelinetask.StatusFailed, Err: err, Retryable: true}
	}
}

// run walks the stages, skipping any whose checkpoint columns are already
// persisted, with a cancellation check before each stage.
func (e *Engine) run(ctx context.Context, task *ent.PipelineTask) error {
	log := slog.With("task_id", task.ID, "type", task.Type, "attempt", task.Attempt)

	// Stage 1+2: resolve the source post and the design, unless a previous
	// attempt already checkpointed them.
	design, post, err := e.resolveDesign(ctx, task, log)
	if err != nil {
		return err
	}

	// Stage 3+4: synthesize, stamp, and host the image.
	if task.ImageURL == nil {
		if err := e.checkCancelled(ctx, task.ID); err != nil {
			return err
		}
		imageURL, err := e.produceImage(ctx, task, design, log)
		if err != nil {
			return err
		}
		task.ImageURL = &imageURL
	} else {
		log.Info("Image already hosted, skipping synthesis", "image_url", *task.ImageURL)
	}

	// Stage 5: product creation.
	if err := e.checkCancelled(ctx, task.ID); err != nil {
		return err
	}
	return e.createProduct(ctx, task, design, post, log)
}

// resolveDesign returns the task's design, running the post_fetching and
// product_designed stages as needed. The returned post is nil when both
// stages were skipped on resume.
func (e *Engine) resolveDesign(ctx context.Context, task *ent.PipelineTask, log *slog.Logger) (*llm.Design, *reddit.Post, error) {
	if task.Theme != nil && task.ImageTitle != nil && task.ImageDescription != nil {
		log.Info("Design already checkpointed, skipping fetch and design stages")
		return &llm.Design{
			Theme:            *task.Theme,
			ImageTitle:       *task.ImageTitle,
			ImageDescription: *task.ImageDescription,
		}, nil, nil
	}

	if err := e.checkCancelled(ctx, task.ID); err != nil {
		return nil, nil, err
	}

	post, summary, err := e.fetchPost(ctx, task, log)
	if err != nil {
		return nil, nil, err
	}

	if err := e.checkCancelled(ctx, task.ID); err != nil {
		return nil, nil, err
	}

	design, err := e.designProduct(ctx, task, post, summary, log)
	if err != nil {
		return nil, nil, err
	}
	return design, post, nil
}

// fetchPost runs stage 1: resolve and record the source post. Returns the
// post and its comment summary for the design stage.
func (e *Engine) fetchPost(ctx context.Context, task *ent.PipelineTask, log *slog.Logger) (*reddit.Post, string, error) {
	e.record(ctx, task.ID, "post_fetching", "selecting a source post")

	var post *reddit.Post
	var err error
	switch {
	case task.PostID != nil:
		post, err = e.fetchSpecificPost(ctx, task)
	case task.Type == pipelinetask.TypeFrontPage:
		post, err = e.selectPost(ctx, "") // front page ⇒ r/popular
	default:
		if task.Subreddit == nil {
			return nil, "", &permanentError{fmt.Errorf("subreddit task %s has no subreddit", task.ID)}
		}
		post, err = e.selectPost(ctx, *task.Subreddit)
	}
	if err != nil {
		return nil, "", err
	}

	summary := e.commentSummary(ctx, post)
	if _, err := e.deps.Subreddits.RecordPost(ctx, post, summary); err != nil {
		return nil, "", fmt.Errorf("recording post: %w", err)
	}
	if err := e.deps.Subreddits.MarkPostUsed(ctx, post.ID); err != nil {
		return nil, "", fmt.Errorf("marking post used: %w", err)
	}

	sub := services.NormalizeName(post.Subreddit)
	updated, err := e.deps.Client.PipelineTask.UpdateOneID(task.ID).
		SetPostID(post.ID).
		SetSubreddit(sub).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("checkpointing post: %w", err)
	}
	task.PostID = updated.PostID
	task.Subreddit = updated.Subreddit

	e.record(ctx, task.ID, "post_fetched",
		fmt.Sprintf("selected r/%s: %s", sub, post.Title))
	log.Info("Post resolved", "post_id", post.ID, "subreddit", sub)
	return post, summary, nil
}

// fetchSpecificPost loads a pre-resolved post. A post deleted between
// validation and execution falls back to random selection from the same
// subreddit; without a subreddit the task fails permanently.
func (e *Engine) fetchSpecificPost(ctx context.Context, task *ent.PipelineTask) (*reddit.Post, error) {
	post, err := e.deps.Platform.GetPost(ctx, *task.PostID)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, reddit.ErrNotFound) && !errors.Is(err, reddit.ErrForbidden) {
		return nil, fmt.Errorf("fetching post %s: %w", *task.PostID, err)
	}

	if task.Subreddit == nil {
		return nil, &permanentError{fmt.Errorf("post %s is gone and no subreddit to fall back to", *task.PostID)}
	}

	slog.Warn("Requested post is gone, falling back to subreddit selection",
		"task_id", task.ID, "post_id", *task.PostID, "subreddit", *task.Subreddit)

	meta := task.Metadata
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["fallback"] = "post_deleted"
	meta["requested_post_id"] = *task.PostID
	if err := e.deps.Client.PipelineTask.UpdateOneID(task.ID).
		SetMetadata(meta).
		ClearPostID().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("recording post fallback: %w", err)
	}
	task.Metadata = meta
	task.PostID = nil

	return e.selectPost(ctx, *task.Subreddit)
}

// designProduct runs stage 2: LLM product design with checkpointing.
func (e *Engine) designProduct(ctx context.Context, task *ent.PipelineTask, post *reddit.Post, summary string, log *slog.Logger) (*llm.Design, error) {
	design, err := e.deps.Designer.DesignProduct(ctx, llm.PostContext{
		Subreddit:      services.NormalizeName(post.Subreddit),
		Title:          post.Title,
		Body:           post.SelfText,
		CommentSummary: summary,
	})
	if err != nil {
		return nil, fmt.Errorf("designing product: %w", err)
	}

	if err := e.deps.Client.PipelineTask.UpdateOneID(task.ID).
		SetTheme(design.Theme).
		SetImageTitle(design.ImageTitle).
		SetImageDescription(design.ImageDescription).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("checkpointing design: %w", err)
	}
	task.Theme = &design.Theme
	task.ImageTitle = &design.ImageTitle
	task.ImageDescription = &design.ImageDescription

	e.record(ctx, task.ID, "product_designed",
		fmt.Sprintf("designed %q (%s)", design.ImageTitle, design.Theme))
	log.Info("Product designed", "theme", design.Theme)
	return design, nil
}

// produceImage runs stages 3 and 4: synthesis, stamping, and hosting.
// The hosted URL is the durable checkpoint; raw bytes never touch the store.
func (e *Engine) produceImage(ctx context.Context, task *ent.PipelineTask, design *llm.Design, log *slog.Logger) (string, error) {
	quality, err := e.imageQuality(ctx, task)
	if err != nil {
		return "", err
	}

	e.record(ctx, task.ID, "image_generation_started",
		fmt.Sprintf("generating %s quality artwork", quality))

	imageBytes, err := e.deps.ImageGen.Generate(ctx, design.ImageDescription, quality)
	if err != nil {
		return "", fmt.Errorf("generating image: %w", err)
	}
	e.record(ctx, task.ID, "image_generated", "artwork generated")

	if err := e.checkCancelled(ctx, task.ID); err != nil {
		return "", err
	}

	if e.deps.CreatorMark != "" {
		stamped, err := StampImage(imageBytes, e.deps.CreatorMark)
		if err != nil {
			// A stamping failure never loses the artwork.
			log.Warn("Stamping failed, uploading unstamped image", "error", err)
		} else {
			imageBytes = stamped
		}
	}

	imageURL, err := imagehost.UploadWithRetry(ctx, e.deps.Uploader,
		imageBytes, design.ImageTitle, design.Theme, uploadAttempts)
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	if err := e.deps.Client.PipelineTask.UpdateOneID(task.ID).
		SetImageURL(imageURL).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("checkpointing image url: %w", err)
	}

	e.record(ctx, task.ID, "image_stamped", "artwork stamped and hosted")
	log.Info("Image hosted", "image_url", imageURL, "quality", quality)
	return imageURL, nil
}

// createProduct runs stage 5: affiliate product creation.
func (e *Engine) createProduct(ctx context.Context, task *ent.PipelineTask, design *llm.Design, post *reddit.Post, log *slog.Logger) error {
	productURL := services.BuildProductURL(
		e.deps.BaseURL, e.deps.Upstream.TemplateID, *task.ImageURL, e.deps.Upstream.AffiliateID)

	req := services.CreateProductRequest{
		TaskID:        task.ID,
		Theme:         design.Theme,
		ImageTitle:    design.ImageTitle,
		ImageURL:      *task.ImageURL,
		ProductURL:    productURL,
		TemplateID:    e.deps.Upstream.TemplateID,
		Model:         e.deps.ImageGen.Model(),
		PromptVersion: e.deps.Designer.PromptVersion(),
		ImageQuality:  string(llm.QualityStandard),
	}
	if hd, err := e.isHD(ctx, task); err == nil && hd {
		req.ImageQuality = string(llm.QualityHD)
	}
	if task.DonationID != nil {
		req.DonationID = *task.DonationID
	}
	if task.PostID != nil {
		req.PostID = *task.PostID
	} else if post != nil {
		req.PostID = post.ID
	}

	if _, err := e.deps.Products.Create(ctx, req); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			log.Info("Product already exists for task, skipping create")
		} else {
			return fmt.Errorf("creating product: %w", err)
		}
	}

	e.record(ctx, task.ID, "commission_complete", "commission complete")
	log.Info("Commission complete", "product_url", productURL)
	return nil
}

// imageQuality derives the render quality from the paying donation's tier.
// Tasks without a donation (scheduled, banner) render standard.
func (e *Engine) imageQuality(ctx context.Context, task *ent.PipelineTask) (llm.Quality, error) {
	hd, err := e.isHD(ctx, task)
	if err != nil {
		return "", err
	}
	if hd {
		return llm.QualityHD, nil
	}
	return llm.QualityStandard, nil
}

func (e *Engine) isHD(ctx context.Context, task *ent.PipelineTask) (bool, error) {
	if task.DonationID == nil {
		return false, nil
	}
	donation, err := e.deps.Donations.GetByID(ctx, *task.DonationID)
	if err != nil {
		return false, fmt.Errorf("loading donation: %w", err)
	}
	if donation.Tier == nil {
		return false, nil
	}
	return e.deps.Tiers.IsHD(ctx, *donation.Tier)
}

// commentSummary condenses the post's top comments for the design prompt.
// Best-effort: failures produce an empty summary, never a stage failure.
func (e *Engine) commentSummary(ctx context.Context, post *reddit.Post) string {
	comments, err := e.deps.Platform.TopComments(ctx,
		services.NormalizeName(post.Subreddit), post.ID, topCommentLimit)
	if err != nil {
		slog.Debug("Comment summary unavailable", "post_id", post.ID, "error", err)
		return ""
	}

	var b strings.Builder
	for _, c := range comments {
		body := clipRunes(strings.TrimSpace(c.Body), 200)
		if body == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + body)
	}
	return b.String()
}

// clipRunes bounds s to at most n bytes without splitting a UTF-8 sequence.
func clipRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// checkCancelled reloads the task status between stages. Cancellation is
// observed at checkpoints, not preemptively.
func (e *Engine) checkCancelled(ctx context.Context, taskID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	current, err := e.deps.Client.PipelineTask.Get(ctx, taskID)
	if err != nil {
		return fmt.Errorf("checking task status: %w", err)
	}
	if current.Status == pipelinetask.StatusCancelled {
		return errCancelled
	}
	return nil
}

// record emits one stage transition. The broker derives the percent from the
// stage; failures are logged and never fail the stage itself.
func (e *Engine) record(ctx context.Context, taskID, stage, message string) {
	if e.deps.Broker == nil {
		return
	}
	if err := e.deps.Broker.Record(ctx, taskID, string(pipelinetask.StatusInProgress), stage, message, 0); err != nil {
		slog.Warn("Failed to record stage transition", "task_id", taskID, "stage", stage, "error", err)
	}
}
