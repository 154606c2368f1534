package api

import "fmt"

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

func (s *UpdateProgressCommand) String() string {
	return fmt.Sprintf("progress %d/%d '%s'", s.Current, s.Total, s.Name)
}

type AssetGeneratedCommand struct {
	Result *AssetResult
}

func (s *AssetGeneratedCommand) String() string {
	return fmt.Sprintf("generated '%s'", s.Result.Path)
}

type ErrorCommand struct {
	Message string
}

func (s *ErrorCommand) String() string {
	return fmt.Sprintf("error '%s'", s.Message)
}
