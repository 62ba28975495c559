package grpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/robalobadob/dailywordle/internal/api"
	"github.com/robalobadob/dailywordle/internal/daily"
	"github.com/robalobadob/dailywordle/internal/words"
)

// WordService implements api.DailyWordServer over an in-process list.
type WordService struct {
	list *words.List
}

// NewWordService serves list.
func NewWordService(list *words.List) *WordService {
	return &WordService{list: list}
}

// GetWord returns the word for the requested day, today when no date is given.
func (w *WordService) GetWord(ctx context.Context, in *api.WordRequest) (*api.WordResponse, error) {
	date := w.list.Today()
	if in.Date != "" {
		d, err := daily.ParseDateKey(in.Date, w.list.Location())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		date = d
	}
	word, err := w.list.WordFor(ctx, date)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.WordResponse{Word: word, Date: daily.DateKey(date)}, nil
}

// ValidateWord reports whether in.Word is in the dictionary.
func (w *WordService) ValidateWord(ctx context.Context, in *api.ValidateRequest) (*api.ValidateResponse, error) {
	ok, err := w.list.ValidateWord(ctx, in.Word)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.ValidateResponse{Valid: ok}, nil
}
