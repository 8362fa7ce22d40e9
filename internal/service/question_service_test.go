package service

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/lshigami/trivia-api/internal/apperr"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/lshigami/trivia-api/internal/model"
)

func TestListQuestions(t *testing.T) {
	qRepo, cRepo := scenarioRepos()
	for i := 3; i <= 25; i++ {
		qRepo.questions = append(qRepo.questions, model.Question{ID: uint(i), Question: fmt.Sprintf("q%d", i), Category: 3})
	}
	svc := NewQuestionService(qRepo, cRepo)
	ctx := context.Background()

	tests := []struct {
		page     int
		wantLen  int
		wantKind apperr.Kind
		wantErr  bool
	}{
		{1, 10, 0, false},
		{3, 5, 0, false},
		{4, 0, apperr.NotFound, true},
		{0, 0, apperr.NotFound, true},
		{math.MaxInt, 0, apperr.NotFound, true},
		{math.MaxInt/QuestionsPerPage + 2, 0, apperr.NotFound, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			page, err := svc.ListQuestions(ctx, tt.page)
			if tt.wantErr {
				if !apperr.Is(err, tt.wantKind) {
					t.Fatalf("error = %v, want kind %v", err, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListQuestions() error = %v", err)
			}
			if len(page.Questions) != tt.wantLen || page.Total != 25 {
				t.Errorf("len = %d total = %d, want %d / 25", len(page.Questions), page.Total, tt.wantLen)
			}
			if len(page.Categories) != 3 {
				t.Errorf("categories = %v", page.Categories)
			}
		})
	}
}

func TestListQuestionsStorageErrorsAreNotFound(t *testing.T) {
	cases := map[string]func(q *fakeQuestionRepo, c *fakeCategoryRepo){
		"count":      func(q *fakeQuestionRepo, _ *fakeCategoryRepo) { q.countErr = errStorage },
		"page":       func(q *fakeQuestionRepo, _ *fakeCategoryRepo) { q.pageErr = errStorage },
		"categories": func(_ *fakeQuestionRepo, c *fakeCategoryRepo) { c.err = errStorage },
	}
	for name, breakRepo := range cases {
		t.Run(name, func(t *testing.T) {
			qRepo, cRepo := scenarioRepos()
			breakRepo(qRepo, cRepo)

			_, err := NewQuestionService(qRepo, cRepo).ListQuestions(context.Background(), 1)
			if !apperr.Is(err, apperr.NotFound) {
				t.Errorf("error = %v, want NotFound", err)
			}
		})
	}
}

func TestCreateQuestion(t *testing.T) {
	qRepo, cRepo := scenarioRepos()
	svc := NewQuestionService(qRepo, cRepo)
	ctx := context.Background()

	req := dto.CreateQuestionRequest{Question: "q", Answer: "a", Category: float64(1), Difficulty: "3"}
	if err := svc.CreateQuestion(ctx, req); err != nil {
		t.Fatalf("CreateQuestion() error = %v", err)
	}
	if len(qRepo.questions) != 3 || qRepo.questions[2].Difficulty != 3 {
		t.Errorf("stored = %+v", qRepo.questions)
	}

	req.Category = nil
	if err := svc.CreateQuestion(ctx, req); !apperr.Is(err, apperr.Unprocessable) {
		t.Errorf("missing category error = %v, want Unprocessable", err)
	}

	qRepo.createErr = errStorage
	req.Category = 1
	if err := svc.CreateQuestion(ctx, req); !apperr.Is(err, apperr.Unprocessable) {
		t.Errorf("insert failure error = %v, want Unprocessable", err)
	}
	if len(qRepo.questions) != 3 {
		t.Errorf("count = %d, want 3", len(qRepo.questions))
	}
}

func TestDeleteQuestion(t *testing.T) {
	tests := []struct {
		name     string
		id       uint
		setup    func(q *fakeQuestionRepo)
		wantKind apperr.Kind
		wantErr  bool
		wantLeft int
	}{
		{"existing", 1, nil, 0, false, 1},
		{"missing", 99, nil, apperr.NotFound, true, 2},
		{"lookup fails", 1, func(q *fakeQuestionRepo) { q.findErr = errStorage }, apperr.Internal, true, 2},
		{"delete fails", 1, func(q *fakeQuestionRepo) { q.deleteErr = errStorage }, apperr.Internal, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qRepo, cRepo := scenarioRepos()
			if tt.setup != nil {
				tt.setup(qRepo)
			}
			err := NewQuestionService(qRepo, cRepo).DeleteQuestion(context.Background(), tt.id)
			if tt.wantErr {
				if !apperr.Is(err, tt.wantKind) {
					t.Errorf("error = %v, want %v", err, tt.wantKind)
				}
			} else if err != nil {
				t.Errorf("DeleteQuestion() error = %v", err)
			}
			if len(qRepo.questions) != tt.wantLeft {
				t.Errorf("left = %d, want %d", len(qRepo.questions), tt.wantLeft)
			}
		})
	}
}

func TestSearchQuestionsSwallowsErrors(t *testing.T) {
	qRepo, cRepo := scenarioRepos()
	svc := NewQuestionService(qRepo, cRepo)

	if got := svc.SearchQuestions(context.Background(), "who"); len(got) != 2 || qRepo.lastTerm != "who" {
		t.Errorf("SearchQuestions() = %v, term %q", got, qRepo.lastTerm)
	}

	qRepo.searchErr = errStorage
	got := svc.SearchQuestions(context.Background(), "who")
	if got == nil || len(got) != 0 {
		t.Errorf("SearchQuestions() on failure = %#v, want empty non-nil slice", got)
	}
}
