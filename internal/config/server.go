package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Server struct {
	ListeningAddress string
	RootURL          string
	// AssetsDir is the directory of the web interface files,
	// and the embedded interface is used if it is empty.
	AssetsDir *string
}

func (s *Server) setDefaults() {
	s.ListeningAddress = gosettings.DefaultComparable(s.ListeningAddress, ":8080")
	s.RootURL = gosettings.DefaultComparable(s.RootURL, "/")
	s.AssetsDir = gosettings.DefaultPointer(s.AssetsDir, "")
}

func (s Server) Validate() (err error) {
	err = validate.ListeningAddress(s.ListeningAddress, os.Getuid())
	if err != nil {
		return fmt.Errorf("listening address: %w", err)
	}

	if !strings.HasPrefix(s.RootURL, "/") {
		return fmt.Errorf("%w: %s", ErrRootURLNotAbsolute, s.RootURL)
	}

	if *s.AssetsDir != "" {
		info, err := os.Stat(*s.AssetsDir)
		switch {
		case err != nil:
			return fmt.Errorf("%w: %w", ErrAssetsDirNotFound, err)
		case !info.IsDir():
			return fmt.Errorf("%w: %s", ErrAssetsDirNotDir, *s.AssetsDir)
		}
	}

	return nil
}

func (s Server) String() string {
	return s.toLinesNode().String()
}

func (s Server) toLinesNode() *gotree.Node {
	node := gotree.New("Server")
	node.Appendf("Listening address: %s", s.ListeningAddress)
	node.Appendf("Root URL: %s", s.RootURL)
	assetsDir := "embedded"
	if *s.AssetsDir != "" {
		assetsDir = *s.AssetsDir
	}
	node.Appendf("Assets: %s", assetsDir)
	return node
}

func (s *Server) read(r *reader.Reader, warner Warner) (err error) {
	s.RootURL = r.String("ROOT_URL", reader.ForceLowercase(false))
	s.AssetsDir = r.Get("ASSETS_DIR", reader.ForceLowercase(false))

	// Retro-compatibility
	port, err := r.Uint16Ptr("PORT")
	if err != nil {
		return err
	} else if port != nil {
		handleDeprecated(warner, "PORT", "LISTENING_ADDRESS")
		s.ListeningAddress = fmt.Sprintf(":%d", *port)
	}

	listeningAddress := r.String("LISTENING_ADDRESS")
	if listeningAddress != "" {
		s.ListeningAddress = listeningAddress
	}

	return nil
}
