package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/smazurov/recordscreen/internal/api/models"
	"github.com/smazurov/recordscreen/internal/ffmpeg"
	"github.com/smazurov/recordscreen/internal/recorder"
)

// registerRecordingRoutes registers all recording endpoints.
func (s *Server) registerRecordingRoutes() {
	// Start a recording
	huma.Register(s.api, huma.Operation{
		OperationID:   "start-recording",
		Method:        http.MethodPost,
		Path:          "/api/recordings",
		Summary:       "Start Recording",
		Description:   "Spawn an ffmpeg recording to the given output path",
		Tags:          []string{"recordings"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{400, 401},
		Security:      withAuth(),
	}, func(ctx context.Context, input *models.RecordingRequest) (*models.RecordingResponse, error) {
		if input.Body.OutputPath == "" {
			return nil, huma.Error400BadRequest("output_path is required")
		}

		session := s.manager.Start(input.Body.OutputPath, apiToOptions(input.Body.Options))
		return &models.RecordingResponse{
			Body: sessionToAPI(session),
		}, nil
	})

	// List recordings
	huma.Register(s.api, huma.Operation{
		OperationID: "list-recordings",
		Method:      http.MethodGet,
		Path:        "/api/recordings",
		Summary:     "List Recordings",
		Description: "Get all registered recordings, settled ones included",
		Tags:        []string{"recordings"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*models.RecordingListResponse, error) {
		sessions := s.manager.List()
		recordings := make([]models.RecordingData, len(sessions))
		for i, session := range sessions {
			recordings[i] = sessionToAPI(session)
		}
		return &models.RecordingListResponse{
			Body: models.RecordingListData{
				Recordings: recordings,
				Count:      len(recordings),
			},
		}, nil
	})

	// Get a single recording
	huma.Register(s.api, huma.Operation{
		OperationID: "get-recording",
		Method:      http.MethodGet,
		Path:        "/api/recordings/{id}",
		Summary:     "Get Recording",
		Description: "Get the state of a single recording",
		Tags:        []string{"recordings"},
		Errors:      []int{401, 404},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		ID string `path:"id" doc:"Recording identifier"`
	}) (*models.RecordingResponse, error) {
		session, ok := s.manager.Get(input.ID)
		if !ok {
			return nil, huma.Error404NotFound("recording not found")
		}
		return &models.RecordingResponse{
			Body: sessionToAPI(session),
		}, nil
	})

	// Cancel a recording
	huma.Register(s.api, huma.Operation{
		OperationID: "cancel-recording",
		Method:      http.MethodDelete,
		Path:        "/api/recordings/{id}",
		Summary:     "Cancel Recording",
		Description: "Interrupt a running recording; settled recordings are a no-op",
		Tags:        []string{"recordings"},
		Errors:      []int{401, 404},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct {
		ID string `path:"id" doc:"Recording identifier"`
	}) (*struct{}, error) {
		if err := s.manager.Cancel(input.ID); err != nil {
			if errors.Is(err, recorder.ErrNotFound) {
				return nil, huma.Error404NotFound("recording not found", err)
			}
			return nil, huma.Error500InternalServerError("internal server error", err)
		}
		return &struct{}{}, nil
	})
}

// apiToOptions converts request options to recording options.
func apiToOptions(in models.RecordingOptionsData) ffmpeg.Options {
	return ffmpeg.Options{
		LogLevel:    in.LogLevel,
		InputFormat: in.InputFormat,
		Resolution:  in.Resolution,
		FPS:         in.FPS,
		VideoFilter: in.VideoFilter,
		VideoCodec:  in.VideoCodec,
		PixelFormat: in.PixelFormat,
		Rotate:      in.Rotate,
		Hostname:    in.Hostname,
		Display:     in.Display,
		Protocol:    in.Protocol,
		Username:    in.Username,
		Password:    in.Password,
		Port:        in.Port,
		Pathname:    in.Pathname,
		Search:      in.Search,
	}
}

// sessionToAPI converts a session to response data. The failure detail is
// only readable once the recording has settled.
func sessionToAPI(session *recorder.Session) models.RecordingData {
	data := models.RecordingData{
		ID:         session.ID,
		OutputPath: session.Recording.OutputPath(),
		State:      string(session.Recording.State()),
		StartedAt:  session.StartedAt.UTC().Format(time.RFC3339),
	}
	select {
	case <-session.Recording.Done():
		if _, err := session.Recording.Wait(context.Background()); err != nil {
			data.Error = err.Error()
		}
	default:
	}
	return data
}
