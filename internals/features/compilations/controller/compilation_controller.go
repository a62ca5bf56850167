package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryModel "ewm_backend/internals/features/categories/model"
	categoryRepo "ewm_backend/internals/features/categories/repository"
	"ewm_backend/internals/features/compilations/dto"
	"ewm_backend/internals/features/compilations/model"
	eventDto "ewm_backend/internals/features/events/dto"
	eventModel "ewm_backend/internals/features/events/model"
	userModel "ewm_backend/internals/features/users/model"
	userRepo "ewm_backend/internals/features/users/repository"
	helper "ewm_backend/internals/helpers"
)

type CompilationController struct {
	DB         *gorm.DB
	categories *categoryRepo.CategoryRepository
	users      *userRepo.UserRepository
	validate   *validator.Validate
}

func NewCompilationController(db *gorm.DB) *CompilationController {
	return &CompilationController{
		DB:         db,
		categories: categoryRepo.NewCategoryRepository(db),
		users:      userRepo.NewUserRepository(db),
		validate:   validator.New(),
	}
}

// POST /admin/compilations
func (ctrl *CompilationController) Create(c *fiber.Ctx) error {
	var req dto.NewCompilationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	compilation := model.CompilationModel{
		CompilationTitle:  req.Title,
		CompilationPinned: req.Pinned,
	}
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&compilation).Error; err != nil {
			return err
		}
		return ctrl.replaceMembership(tx, compilation.CompilationID, req.Events)
	})
	if err != nil {
		log.Println("[ERROR] Create compilation gagal:", err)
		return helper.FromFiberError(c, err)
	}

	resp, err := ctrl.toResponse(c, compilation)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Compilation dibuat", resp)
}

// PATCH /admin/compilations/:compId
func (ctrl *CompilationController) Update(c *fiber.Ctx) error {
	id, err := paramCompID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateCompilationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var compilation model.CompilationModel
	if err := ctrl.DB.First(&compilation, "compilation_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Compilation tidak ditemukan")
	}

	if req.Title != nil && *req.Title != "" {
		compilation.CompilationTitle = *req.Title
	}
	if req.Pinned != nil {
		compilation.CompilationPinned = *req.Pinned
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&compilation).Error; err != nil {
			return err
		}
		if req.Events != nil {
			return ctrl.replaceMembership(tx, compilation.CompilationID, req.Events)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Update compilation gagal:", err)
		return helper.FromFiberError(c, err)
	}

	resp, err := ctrl.toResponse(c, compilation)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Compilation diupdate", resp)
}

// DELETE /admin/compilations/:compId
func (ctrl *CompilationController) Delete(c *fiber.Ctx) error {
	id, err := paramCompID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var compilation model.CompilationModel
	if err := ctrl.DB.First(&compilation, "compilation_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Compilation tidak ditemukan")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("compilation_event_compilation_id = ?", id).
			Delete(&model.CompilationEventModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&compilation).Error
	})
	if err != nil {
		log.Println("[ERROR] Delete compilation gagal:", err)
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Compilation dihapus", fiber.Map{"id": id})
}

// GET /compilations?pinned=&from=&size=
func (ctrl *CompilationController) GetAll(c *fiber.Ctx) error {
	page, err := helper.ParseFromSize(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.CompilationModel{})
	if raw := c.Query("pinned"); raw != "" {
		pinned, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Parameter 'pinned' harus boolean")
		}
		q = q.Where("compilation_pinned = ?", pinned)
	}

	var compilations []model.CompilationModel
	if err := q.Order("compilation_id ASC").
		Offset(page.Offset()).Limit(page.Limit()).
		Find(&compilations).Error; err != nil {
		log.Println("[ERROR] Fetch compilations gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil compilations")
	}

	out, err := ctrl.toResponses(c, compilations)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Daftar compilation", out)
}

// GET /compilations/:compId
func (ctrl *CompilationController) GetByID(c *fiber.Ctx) error {
	id, err := paramCompID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var compilation model.CompilationModel
	if err := ctrl.DB.First(&compilation, "compilation_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Compilation tidak ditemukan")
	}
	resp, err := ctrl.toResponse(c, compilation)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Detail compilation", resp)
}

// replaceMembership mengganti isi join table; event yang tidak ada → 404.
func (ctrl *CompilationController) replaceMembership(tx *gorm.DB, compilationID uint, eventIDs []uint) error {
	if err := tx.Where("compilation_event_compilation_id = ?", compilationID).
		Delete(&model.CompilationEventModel{}).Error; err != nil {
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&eventModel.EventModel{}).
		Where("event_id IN ?", eventIDs).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(eventIDs)) {
		return fiber.NewError(fiber.StatusNotFound, "Sebagian event tidak ditemukan")
	}

	rows := make([]model.CompilationEventModel, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		rows = append(rows, model.CompilationEventModel{
			CompilationEventCompilationID: compilationID,
			CompilationEventEventID:       eventID,
		})
	}
	return tx.Create(&rows).Error
}

func (ctrl *CompilationController) toResponse(c *fiber.Ctx, compilation model.CompilationModel) (dto.CompilationResponse, error) {
	out, err := ctrl.toResponses(c, []model.CompilationModel{compilation})
	if err != nil {
		return dto.CompilationResponse{}, err
	}
	return out[0], nil
}

// toResponses menyusun satu halaman compilation sekaligus: membership, event,
// category, dan initiator masing-masing dimuat satu query batch untuk seluruh
// halaman, bukan per compilation.
func (ctrl *CompilationController) toResponses(c *fiber.Ctx, compilations []model.CompilationModel) ([]dto.CompilationResponse, error) {
	ids := make([]uint, 0, len(compilations))
	for _, comp := range compilations {
		ids = append(ids, comp.CompilationID)
	}

	var membership []model.CompilationEventModel
	if len(ids) > 0 {
		if err := ctrl.DB.
			Where("compilation_event_compilation_id IN ?", ids).
			Order("compilation_event_event_id ASC").
			Find(&membership).Error; err != nil {
			return nil, err
		}
	}

	eventIDs := make([]uint, 0, len(membership))
	seen := make(map[uint]bool, len(membership))
	for _, m := range membership {
		if !seen[m.CompilationEventEventID] {
			seen[m.CompilationEventEventID] = true
			eventIDs = append(eventIDs, m.CompilationEventEventID)
		}
	}

	events := map[uint]eventModel.EventModel{}
	categories := map[uint]categoryModel.CategoryModel{}
	users := map[uint]userModel.UserModel{}
	if len(eventIDs) > 0 {
		var rows []eventModel.EventModel
		if err := ctrl.DB.Where("event_id IN ?", eventIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		categoryIDs := make([]uint, 0, len(rows))
		userIDs := make([]uint, 0, len(rows))
		for _, ev := range rows {
			events[ev.EventID] = ev
			categoryIDs = append(categoryIDs, ev.EventCategoryID)
			userIDs = append(userIDs, ev.EventInitiatorID)
		}

		var err error
		categories, err = ctrl.categories.GetByIDs(c.UserContext(), categoryIDs)
		if err != nil {
			return nil, err
		}
		users, err = ctrl.users.GetByIDs(c.UserContext(), userIDs)
		if err != nil {
			return nil, err
		}
	}

	return composeCompilationResponses(compilations, membership, events, categories, users), nil
}

// composeCompilationResponses merakit response dari entity yang sudah dimuat.
// Urutan compilation mengikuti input; anggota urut event id (membership sudah
// diurutkan oleh query-nya).
func composeCompilationResponses(
	compilations []model.CompilationModel,
	membership []model.CompilationEventModel,
	events map[uint]eventModel.EventModel,
	categories map[uint]categoryModel.CategoryModel,
	users map[uint]userModel.UserModel,
) []dto.CompilationResponse {
	members := make(map[uint][]uint, len(compilations))
	for _, m := range membership {
		members[m.CompilationEventCompilationID] = append(
			members[m.CompilationEventCompilationID], m.CompilationEventEventID)
	}

	out := make([]dto.CompilationResponse, 0, len(compilations))
	for _, comp := range compilations {
		resp := dto.CompilationResponse{
			ID:     comp.CompilationID,
			Title:  comp.CompilationTitle,
			Pinned: comp.CompilationPinned,
			Events: []eventDto.EventShortResponse{},
		}
		for _, eventID := range members[comp.CompilationID] {
			ev, ok := events[eventID]
			if !ok {
				continue
			}
			resp.Events = append(resp.Events, eventDto.ToEventShortResponse(eventDto.EventBundle{
				Event:    ev,
				Category: categories[ev.EventCategoryID],
				User:     users[ev.EventInitiatorID],
			}))
		}
		out = append(out, resp)
	}
	return out
}

func paramCompID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("compId"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "compId tidak valid")
	}
	return uint(id), nil
}
