package handlers

import "github.com/gofiber/fiber/v2"

// CourseHandler serves the course catalog with member progress.
type CourseHandler struct {
	courses CourseAPI
}

func NewCourseHandler(courses CourseAPI) *CourseHandler {
	return &CourseHandler{courses: courses}
}

func (h *CourseHandler) ListModules(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	modules, err := h.courses.Modules(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"modules": modules})
}

func (h *CourseHandler) GetModule(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	module, err := h.courses.Module(c.UserContext(), identity.UserID, c.Params("module_id"))
	if err != nil {
		return err
	}
	return c.JSON(module)
}

// CompleteLesson marks a lesson as done for the caller.
func (h *CourseHandler) CompleteLesson(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	if err := h.courses.CompleteLesson(c.UserContext(), identity.UserID, c.Params("module_id"), c.Params("lesson_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Lesson marked as complete"})
}
