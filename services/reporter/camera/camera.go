package camera

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fieldops/towtrack/internal/pkg/models"
	"github.com/fieldops/towtrack/services/reporter"
	"github.com/fieldops/towtrack/services/reporter/photo"
)

// execCamera shells out to a capture tool (fswebcam, libcamera-still, ...)
// that writes a frame to the given path, then runs the result through the
// photo pipeline.
type execCamera struct {
	command string
	maxDim  int
	quality int
}

// NewExecCamera creates a camera from a capture command template; the
// literal {file} is replaced with the output path.
func NewExecCamera(command string, cfg models.DeviceConfig) reporter.PhotoCamera {
	return &execCamera{
		command: command,
		maxDim:  cfg.PhotoMaxDim,
		quality: cfg.PhotoQuality,
	}
}

func (c *execCamera) Capture(ctx context.Context) (models.Photo, error) {
	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("capture-%s.jpg", uuid.NewString()))
	defer os.Remove(outPath)

	parts := strings.Fields(strings.ReplaceAll(c.command, "{file}", outPath))
	if len(parts) == 0 {
		return models.Photo{}, fmt.Errorf("capture command is empty")
	}

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	if output, err := cmd.CombinedOutput(); err != nil {
		if strings.Contains(strings.ToLower(string(output)), "permission") {
			return models.Photo{}, models.ErrPermissionDenied
		}
		return models.Photo{}, fmt.Errorf("capture command failed: %w", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to read captured frame: %w", err)
	}

	return photo.Process(data, c.maxDim, c.quality)
}

// StaticCamera serves a fixed image, used in development and tests
type StaticCamera struct {
	Photo models.Photo
	Err   error
}

func (c *StaticCamera) Capture(ctx context.Context) (models.Photo, error) {
	if c.Err != nil {
		return models.Photo{}, c.Err
	}
	return c.Photo, nil
}
