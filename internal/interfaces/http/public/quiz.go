package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/stylecrate/stylecrate-services/api/internal/interfaces/http/common"
	quizapp "github.com/stylecrate/stylecrate-services/api/internal/quiz/application"
	quizdomain "github.com/stylecrate/stylecrate-services/api/internal/quiz/domain"
)

func (h *Handler) quizQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response := buildQuizQuestionsResponse(h.quizService.QuizID(), h.quizService.Questions())
		common.WriteJSON(h.logger, w, http.StatusOK, response)
	}
}

func (h *Handler) quizSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var request quizSubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		answers := make([]quizdomain.Answer, 0, len(request.Answers))
		for _, answer := range request.Answers {
			answers = append(answers, quizdomain.Answer{
				QuestionID: answer.QuestionID,
				OptionID:   answer.OptionID,
			})
		}

		result, err := h.quizService.Submit(ctx, answers)
		if err != nil {
			switch {
			case errors.Is(err, quizdomain.ErrInvalidAnswers):
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			case errors.Is(err, quizapp.ErrEmptyResultSet):
				// Quiz weight keys and the stored catalog disagree. This is
				// a deployment problem, not a caller problem.
				h.logger.Printf("quiz submission resolved no aesthetics: %v", err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "quiz results could not be resolved")
			default:
				h.logger.Printf("quiz submission failed: %v", err)
				common.WriteError(h.logger, w, http.StatusInternalServerError, "quiz submission failed")
			}
			return
		}

		alternatives := make([]quizAestheticResponse, 0, len(result.Alternatives))
		for _, alternative := range result.Alternatives {
			alternatives = append(alternatives, buildQuizAestheticResponse(alternative))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, quizSubmissionResponse{
			TopAesthetic:          buildQuizAestheticResponse(result.Top),
			AlternativeAesthetics: alternatives,
		})
	}
}

func (h *Handler) authVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := common.UserFromContext(r.Context())
		if !ok {
			common.WriteError(h.logger, w, http.StatusInternalServerError, "authenticated user missing from context")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"status": "ok",
			"user":   user,
		})
	}
}
