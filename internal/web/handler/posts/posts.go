// Package posts provides the blog post CRUD endpoints.
package posts

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/inkwell-cms/inkwell/internal/config"
	controller "github.com/inkwell-cms/inkwell/internal/db/controller/post"
	"github.com/inkwell-cms/inkwell/internal/db/models"
	"github.com/inkwell-cms/inkwell/internal/slug"
	"github.com/inkwell-cms/inkwell/internal/web/handler"
)

const (
	// Path is the path to the posts collection below the API base path.
	Path = "/posts"

	// ItemPath is the path to a single post below the API base path.
	ItemPath = Path + "/:id"

	missingFieldsMsg = "Title and content are required"
	notFoundMsg      = "Post not found"
)

// Service is the posts handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the posts handler.
var Handler = Service{}

// request is the expected create/update body.
type request struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Format  string `json:"format"`
	Slug    string `json:"slug"`
}

// toModel converts the body into a post, deriving the slug from the
// title when none was supplied.
func (r *request) toModel() *models.Post {
	finalSlug := r.Slug
	if finalSlug == "" {
		finalSlug = slug.Derive(r.Title)
	}

	return &models.Post{
		Title:   r.Title,
		Content: r.Content,
		Format:  r.Format,
		Slug:    finalSlug,
	}
}

// Init initializes the posts handler.
func (s *Service) Init(api fiber.Router, cfg *config.Config, db *gorm.DB, gate fiber.Handler) error {
	if api == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	api.Get(Path, s.List)
	api.Get(ItemPath, s.Get)
	api.Post(Path, gate, s.Create)
	api.Put(ItemPath, gate, s.Update)
	api.Delete(ItemPath, gate, s.Delete)

	return nil
}

// List returns all posts, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	posts, err := controller.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(posts)
}

// Get returns a single post by ID.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		// a non-numeric id matches no row
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
	}

	post, err := controller.Get(s.db, id)
	if err != nil {
		if errors.Is(err, controller.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMsg})
		}

		log.Error().Err(err).Uint64("id", id).Msg("failed to load post")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(post)
}

// Create inserts a new post. The created row is not echoed back;
// callers re-list to see it.
func (s *Service) Create(c *fiber.Ctx) error {
	body := new(request)

	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.validator.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missingFieldsMsg})
	}

	post := body.toModel()

	if err := controller.Create(s.db, post); err != nil {
		log.Error().Err(err).Msg("failed to create post")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Uint64("id", post.ID).Str("slug", post.Slug).Msg("post created")

	return c.JSON(fiber.Map{"success": true})
}

// Update overwrites the post with the given ID. Updating an ID that
// does not exist succeeds without touching a row.
func (s *Service) Update(c *fiber.Ctx) error {
	body := new(request)

	if err := c.BodyParser(body); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.validator.Struct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": missingFieldsMsg})
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		// a non-numeric id matches no row
		return c.JSON(fiber.Map{"success": true})
	}

	if err := controller.Update(s.db, id, body.toModel()); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to update post")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}

// Delete removes the post with the given ID. Deleting an ID that does
// not exist succeeds without touching a row.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		// a non-numeric id matches no row
		return c.JSON(fiber.Map{"success": true})
	}

	if err := controller.Delete(s.db, id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("failed to delete post")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
