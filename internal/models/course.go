package models

import (
	"time"
)

// Lesson — один урок курса.
type Lesson struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	IsFree   bool   `json:"is_free"`
}

// Chapter — глава учебной программы.
type Chapter struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Instructor — сведения о преподавателе.
type Instructor struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// Course — карточка курса для списка.
// IsPurchased всегда false: продажа курсов не реализована, поле нужно фронтенду.
type Course struct {
	ID          int64   `db:"id" json:"id"`
	Type        string  `db:"type" json:"type"`
	Title       string  `db:"title" json:"title"`
	Description *string `db:"description" json:"description"`
	Thumbnail   *string `db:"thumbnail" json:"thumbnail"`
	Price       int64   `db:"price" json:"price"`
	Duration    *string `db:"duration" json:"duration"`
	Pages       *int    `db:"pages" json:"pages"`
	Chapters    *int    `db:"chapters" json:"chapters"`
	Rating      float64 `db:"rating" json:"rating"`
	Students    int     `db:"students" json:"students"`
	Level       string  `db:"level" json:"level"`
	IsPurchased bool    `db:"-" json:"isPurchased"`
}

// CourseDetail — полная запись курса.
type CourseDetail struct {
	Course

	Reviews        int        `db:"reviews" json:"reviews"`
	InstructorName string     `db:"instructor_name" json:"-"`
	InstructorBio  string     `db:"instructor_bio" json:"-"`
	Instructor     Instructor `db:"-" json:"instructor"`
	WhatYouLearn   StringList `db:"what_you_learn" json:"whatYouLearn"`
	Curriculum     ChapterList `db:"curriculum" json:"curriculum"`
	Requirements   StringList `db:"requirements" json:"requirements"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at"`
}
