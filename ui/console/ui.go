package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"vincit.fi/image-gallery/api"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/common/logger"
)

var ErrUnknownCommand = errors.New("unknown command")

const usage = `commands:
  click <id>
  drag-start <id>
  drag-end <sourceId> [targetId]
  add <slug>
  delete
  show`

// Ui is a line based front-end. It turns each input line into a gallery
// event and prints the gallery every time it changes.
type Ui struct {
	sender     api.Sender
	in         io.Reader
	out        io.Writer
	outMux     sync.Mutex
	updates    *drain
	errorLines *drain

	api.Gui
}

func NewUi(sender api.Sender, in io.Reader, out io.Writer) *Ui {
	return &Ui{
		sender:     sender,
		in:         in,
		out:        out,
		updates:    newDrain(),
		errorLines: newDrain(),
	}
}

// drain is closed when the QuitCommand comes back on a topic, which means
// everything sent on that topic before it has been handled.
type drain struct {
	done chan struct{}
	once sync.Once
}

func newDrain() *drain {
	return &drain{done: make(chan struct{})}
}

func (s *drain) close() {
	s.once.Do(func() { close(s.done) })
}

// Run sends one event per input line and returns once the last update and
// the last error have been printed.
func (s *Ui) Run() error {
	s.sender.SendCommandToTopic(api.GalleryEvent, &api.GalleryQuery{})

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if command, err := ParseCommand(line); err != nil {
			logger.Warn.Printf("Skipping '%s': %s", line, err)
			s.printf("%s: %q\n%s\n", err, line, usage)
		} else {
			s.sender.SendCommandToTopic(api.GalleryEvent, command)
		}
	}

	s.sender.SendCommandToTopic(api.GalleryEvent, &api.QuitCommand{})
	<-s.updates.done
	<-s.errorLines.done
	return scanner.Err()
}

func (s *Ui) HandleUpdate(command apitype.Command) {
	switch c := command.(type) {
	case *api.UpdateGalleryCommand:
		s.printf("%s", Render(c))
	case *api.QuitCommand:
		s.updates.close()
	default:
		logger.Warn.Printf("Unknown update %s", command)
	}
}

func (s *Ui) ShowError(command apitype.Command) {
	switch c := command.(type) {
	case *api.ErrorCommand:
		s.printf("error: %s\n", c.Message)
	case *api.QuitCommand:
		s.errorLines.close()
	default:
		logger.Warn.Printf("Unknown error command %s", command)
	}
}

func (s *Ui) printf(format string, args ...interface{}) {
	s.outMux.Lock()
	defer s.outMux.Unlock()
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		logger.Error.Print("Could not write output ", err)
	}
}

func ParseCommand(line string) (apitype.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrUnknownCommand
	}

	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "click":
		if len(args) == 1 {
			return &api.ClickCommand{Id: apitype.ItemId(args[0])}, nil
		}
	case "drag-start":
		if len(args) == 1 {
			return &api.DragStartCommand{Id: apitype.ItemId(args[0])}, nil
		}
	case "drag-end":
		if len(args) == 1 {
			return &api.DragEndCommand{SourceId: apitype.ItemId(args[0]), TargetId: apitype.NoItemId}, nil
		} else if len(args) == 2 {
			return &api.DragEndCommand{SourceId: apitype.ItemId(args[0]), TargetId: apitype.ItemId(args[1])}, nil
		}
	case "add":
		if len(args) == 1 {
			return &api.AddImageCommand{Slug: args[0]}, nil
		}
	case "delete":
		if len(args) == 0 {
			return &api.DeleteSelectedCommand{}, nil
		}
	case "show":
		if len(args) == 0 {
			return &api.GalleryQuery{}, nil
		}
	}
	return nil, ErrUnknownCommand
}

// Render draws the header line and one row per image.
func Render(command *api.UpdateGalleryCommand) string {
	var builder strings.Builder

	header := command.Header
	if header == nil {
		header = apitype.HeaderForItems(command.Items)
	}
	if header.HasSelection() {
		fmt.Fprintf(&builder, "%s | %s\n", header.Title(), header.DeleteLabel())
	} else {
		fmt.Fprintf(&builder, "%s\n", header.Title())
	}

	for _, item := range command.Items {
		mark := " "
		if item.IsSelected() {
			mark = "x"
		}
		fmt.Fprintf(&builder, "[%s] %s %s\n", mark, item.Id(), item.Slug())
	}

	if command.ActiveItem != nil {
		fmt.Fprintf(&builder, "dragging %s %s\n", command.ActiveItem.Id(), command.ActiveItem.Slug())
	}
	return builder.String()
}
