package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is a member of a treasurer's roster.
//
// The cedula is unique per treasurer only, other treasurers may register
// the same cedula.
type Student struct {
	DefaultModel
	TesoreroID uuid.UUID `json:"tesorero_id" gorm:"uniqueIndex:idx_students_tesorero_cedula,priority:1;not null" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the owning treasurer
	Treasurer  Treasurer `json:"-" gorm:"foreignKey:TesoreroID"`
	Name       string    `json:"name" gorm:"not null" example:"María Pérez"`
	Cedula     string    `json:"cedula" gorm:"uniqueIndex:idx_students_tesorero_cedula,priority:2;index:idx_students_cedula;not null" example:"0912345678"` // National ID number
}

func (s *Student) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Cedula = strings.TrimSpace(s.Cedula)

	if s.Name == "" {
		return ErrStudentNameEmpty
	}

	if s.Cedula == "" {
		return ErrCedulaEmpty
	}

	return nil
}

// AddStudent adds a student to the roster of the treasurer.
func (t Treasurer) AddStudent(db *gorm.DB, name, cedula string) (Student, error) {
	s := Student{
		TesoreroID: t.ID,
		Name:       name,
		Cedula:     cedula,
	}

	err := db.Create(&s).Error
	if err != nil {
		return Student{}, err
	}

	return s, nil
}

// Students returns the roster of the treasurer, ordered by name.
func (t Treasurer) Students(db *gorm.DB) ([]Student, error) {
	students := make([]Student, 0)
	err := db.
		Where("tesorero_id = ?", t.ID).
		Order("name, created_at").
		Limit(MaxResults).
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

// Student returns the student with the given ID if it belongs to the treasurer.
func (t Treasurer) Student(db *gorm.DB, id uuid.UUID) (Student, error) {
	var s Student
	err := db.Where("id = ? AND tesorero_id = ?", id, t.ID).First(&s).Error
	if err != nil {
		return Student{}, err
	}

	return s, nil
}

// DeleteStudent removes the student and all of its payments.
// Expenses the student was responsible for are kept.
func (t Treasurer) DeleteStudent(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		s, err := t.Student(tx, id)
		if err != nil {
			return err
		}

		err = tx.Where("student_id = ?", s.ID).Delete(&Payment{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&s).Error
	})
}

// studentError replaces the generic not found error of a student lookup.
func studentError(err error) error {
	if errors.Is(err, ErrResourceNotFound) {
		return ErrStudentNotFound
	}
	return err
}
