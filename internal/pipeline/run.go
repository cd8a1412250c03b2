package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/picture"
)

// Run applies cmds to src left to right and returns the final picture.
//
// It stops at the first failing step and returns no picture. ctx is
// checked between steps; a running step is not interrupted.
func Run(ctx context.Context, src *picture.Picture, cmds []Command, load Loader) (*picture.Picture, error) {
	log := picture.Logger()

	cur := src
	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline: step %d (%s): %w", i+1, cmd.Name(), err)
		}

		start := time.Now()
		next, err := cmd.Apply(cur, load)
		if err != nil {
			return nil, fmt.Errorf("pipeline: step %d (%s): %w", i+1, cmd, err)
		}
		log.Debug("pipeline: step done",
			"step", i+1,
			"command", cmd.String(),
			"width", next.Width(),
			"height", next.Height(),
			"elapsed", time.Since(start))
		cur = next
	}
	return cur, nil
}

// Help describes a command for usage output.
type Help struct {
	Name        string
	Usage       string
	Description string
}

// Commands lists every command Parse accepts, in usage order.
var Commands = []Help{
	{Name: "invert", Usage: "invert", Description: "Invert every color channel (255 - c)."},
	{Name: "grayscale", Usage: "grayscale", Description: "Replace each color by the mean of its channels."},
	{Name: "rotate", Usage: "rotate <degrees>", Description: "Rotate clockwise about the center."},
	{Name: "flip", Usage: "flip <H|V>", Description: "Mirror horizontally (H) or vertically (V)."},
	{Name: "matrix", Usage: "matrix <a> <b> <c> <d>", Description: "Apply the linear map [[a b] [c d]]."},
	{Name: "blur", Usage: "blur", Description: "3x3 mean blur; the one-pixel border is kept."},
	{Name: "blend", Usage: "blend <path>...", Description: "Average with the given pictures; must be last."},
}
