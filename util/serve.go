package util

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/kovetskiy/optmark/compose"
	"github.com/kovetskiy/optmark/options"
	"github.com/kovetskiy/optmark/render"
	"github.com/kovetskiy/optmark/vfs"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/urfave/cli/v3"
)

// SelectParam carries selectors in the [section:]dimension=option form.
const SelectParam = "select"

var (
	defaultHost  = "127.0.0.1"
	defaultPorts = []string{"8000", "5173", "3000", "8080"}
)

// Server serves the selection form for a single options file. The file is
// read on every request, so edits show up without a restart.
type Server struct {
	opener vfs.Opener
	file   string
	title  string
	mux    *http.ServeMux
}

func NewServer(opener vfs.Opener, file string, title string) *Server {
	server := &Server{
		opener: opener,
		file:   file,
		title:  title,
		mux:    http.NewServeMux(),
	}

	server.mux.HandleFunc("GET /{$}", server.handlePage)
	server.mux.HandleFunc("GET /options.md", server.handleSource)
	server.mux.HandleFunc("GET /options.json", server.handleSections)
	server.mux.HandleFunc("GET /output.txt", server.handleOutput)

	return server
}

func (server *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	header := writer.Header()
	header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")

	log.Tracef(nil, "%s %s", request.Method, request.URL)

	server.mux.ServeHTTP(writer, request)
}

func (server *Server) load() (string, []options.Section, error) {
	source, err := vfs.ReadFile(server.opener, server.file)
	if err != nil {
		return "", nil, err
	}

	return source, options.ParseSections(source), nil
}

// selection builds the selection from the ref and select query parameters.
func (server *Server) selection(
	request *http.Request,
	sections []options.Section,
) (*compose.Selection, error) {
	query := request.URL.Query()

	selection := compose.NewSelection()
	for _, value := range query[render.RefParam] {
		ref, err := compose.ParseRef(value)
		if err != nil {
			return nil, err
		}

		selection.Set(ref, true)
	}

	err := compose.Select(sections, selection, query[SelectParam])
	if err != nil {
		return nil, err
	}

	return selection, nil
}

func (server *Server) handlePage(writer http.ResponseWriter, request *http.Request) {
	_, sections, err := server.load()
	if err != nil {
		server.fail(writer, err, http.StatusInternalServerError)
		return
	}

	if err := compose.Validate(sections); err != nil {
		server.fail(writer, err, http.StatusUnprocessableEntity)
		return
	}

	selection, err := server.selection(request, sections)
	if err != nil {
		server.fail(writer, err, http.StatusBadRequest)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")

	err = render.Page(writer, render.PageData{
		Title:     server.title,
		Source:    "options.md",
		Sections:  sections,
		Selection: selection,
	})
	if err != nil {
		log.Errorf(err, "unable to render page")
	}
}

func (server *Server) handleSource(writer http.ResponseWriter, request *http.Request) {
	source, err := vfs.ReadFile(server.opener, server.file)
	if err != nil {
		server.fail(writer, err, http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = writer.Write([]byte(source))
}

func (server *Server) handleSections(writer http.ResponseWriter, request *http.Request) {
	_, sections, err := server.load()
	if err != nil {
		server.fail(writer, err, http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)

	err = encoder.Encode(sections)
	if err != nil {
		log.Errorf(err, "unable to encode sections")
	}
}

func (server *Server) handleOutput(writer http.ResponseWriter, request *http.Request) {
	_, sections, err := server.load()
	if err != nil {
		server.fail(writer, err, http.StatusInternalServerError)
		return
	}

	if err := compose.Validate(sections); err != nil {
		server.fail(writer, err, http.StatusUnprocessableEntity)
		return
	}

	selection, err := server.selection(request, sections)
	if err != nil {
		server.fail(writer, err, http.StatusBadRequest)
		return
	}

	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = writer.Write([]byte(compose.Text(sections, selection)))
}

func (server *Server) fail(writer http.ResponseWriter, err error, status int) {
	if status >= http.StatusInternalServerError {
		log.Errorf(err, "unable to serve %s", server.file)
	} else {
		log.Warningf(err, "bad request for %s", server.file)
	}

	http.Error(writer, err.Error(), status)
}

// Listen listens on the address or, if it's empty, on the first free
// default port.
func Listen(address string) (net.Listener, error) {
	if address != "" {
		listener, err := net.Listen("tcp", address)
		if err != nil {
			return nil, karma.Format(err, "unable to listen on %s", address)
		}

		return listener, nil
	}

	var errs []error
	for _, port := range defaultPorts {
		listener, err := net.Listen("tcp", net.JoinHostPort(defaultHost, port))
		if err == nil {
			return listener, nil
		}

		errs = append(errs, err)
	}

	return nil, karma.Format(
		errors.Join(errs...),
		"no free port found among: %v",
		defaultPorts,
	)
}

func RunServe(ctx context.Context, cmd *cli.Command) error {
	files, err := MatchFiles(cmd.String("files"), cmd.Bool("ci"))
	if err != nil || len(files) == 0 {
		return err
	}

	file := files[0]
	if len(files) > 1 {
		log.Warningf(nil, "%d files matched, only %s will be served", len(files), file)
	}

	title := cmd.String("title")
	if title == "" {
		document, err := LoadDocument(vfs.LocalOS, file)
		if err != nil {
			return err
		}

		title = document.Title
	}

	listener, err := Listen(cmd.String("listen"))
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           NewServer(vfs.LocalOS, file, title),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof(nil, "serving %s at http://%s/", file, listener.Addr())

	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		return err

	case <-ctx.Done():
		log.Info("shutting down")

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdown)
	}
}
