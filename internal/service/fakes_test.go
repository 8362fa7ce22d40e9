package service

import (
	"context"
	"errors"

	"github.com/lshigami/trivia-api/internal/model"
	"gorm.io/gorm"
)

var errStorage = errors.New("storage unavailable")

type fakeQuestionRepo struct {
	questions []model.Question
	createErr error
	findErr   error
	deleteErr error
	countErr  error
	pageErr   error
	searchErr error
	randomErr error
	lastTerm  string
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	if f.createErr != nil {
		return f.createErr
	}
	q.ID = uint(len(f.questions) + 1)
	f.questions = append(f.questions, *q)
	return nil
}

func (f *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.questions {
		if f.questions[i].ID == id {
			return &f.questions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) Count(context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.questions)), nil
}

func (f *fakeQuestionRepo) FindPage(_ context.Context, offset, limit int) ([]model.Question, error) {
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	if offset >= len(f.questions) {
		return nil, nil
	}
	end := min(offset+limit, len(f.questions))
	return f.questions[offset:end], nil
}

func (f *fakeQuestionRepo) Search(_ context.Context, term string) ([]model.Question, error) {
	f.lastTerm = term
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.questions, nil
}

func (f *fakeQuestionRepo) FindByCategory(_ context.Context, categoryID int) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) RandomExcluding(_ context.Context, categoryID int, excluded []uint) (*model.Question, error) {
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	seen := make(map[uint]bool, len(excluded))
	for _, id := range excluded {
		seen[id] = true
	}
	for i := range f.questions {
		q := f.questions[i]
		if (categoryID == 0 || q.Category == categoryID) && !seen[q.ID] {
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCategoryRepo struct {
	categories []model.Category
	err        error
}

func (f *fakeCategoryRepo) FindAll(context.Context) ([]model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func scenarioRepos() (*fakeQuestionRepo, *fakeCategoryRepo) {
	return &fakeQuestionRepo{questions: []model.Question{
			{ID: 1, Question: "What is the chemical symbol for gold?", Answer: "Au", Category: 1, Difficulty: 2},
			{ID: 2, Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Category: 2, Difficulty: 1},
		}}, &fakeCategoryRepo{categories: []model.Category{
			{ID: 1, Type: "Science"},
			{ID: 2, Type: "Art"},
			{ID: 3, Type: "History"},
		}}
}
