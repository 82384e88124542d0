package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tesoreria-paralelo/backend/internal/httperror"
	"github.com/tesoreria-paralelo/backend/internal/httputil"
)

// RegisterStudentRoutes registers the routes for Students with
// the RouterGroup that is passed.
func (co Controller) RegisterStudentRoutes(r *gin.RouterGroup) {
	authenticate := co.Authenticate()

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", authenticate, co.GetStudents)
		r.POST("", authenticate, co.CreateStudent)
	}

	// Student with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", authenticate, co.DeleteStudent)
	}
}

// @Summary		Create student
// @Description	Adds a student to the roster. The cedula must be unique within the paralelo.
// @Tags			Students
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	StudentResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			student	body		StudentEditable	true	"Student"
// @Router			/students [post]
func (co Controller) CreateStudent(c *gin.Context) {
	var editable StudentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	s, err := currentTreasurer(c).AddStudent(co.db(c), editable.Name, editable.Cedula)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, StudentResponse{Data: newStudent(c, s)})
}

// @Summary		List students
// @Description	Returns the roster of the paralelo, ordered by name
// @Tags			Students
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	StudentListResponse
// @Failure		401	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/students [get]
func (co Controller) GetStudents(c *gin.Context) {
	students, err := currentTreasurer(c).Students(co.db(c))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Student, 0, len(students))
	for _, s := range students {
		data = append(data, newStudent(c, s))
	}

	c.JSON(http.StatusOK, StudentListResponse{Data: data})
}

// @Summary		Delete student
// @Description	Deletes a student and all of their payments. Expenses the student was responsible for are kept.
// @Tags			Students
// @Security		BearerAuth
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/students/{id} [delete]
func (co Controller) DeleteStudent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = currentTreasurer(c).DeleteStudent(co.db(c), uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}
