package types

type Config interface {
	Validate() error
	PostProcess() error
}
