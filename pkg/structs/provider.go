package structs

type Provider interface {
	SystemGet() (*System, error)
	SystemInstall(ts InstanceTypes, opts SystemInstallOptions) (string, error)
	SystemTemplate(ts InstanceTypes) ([]byte, error)
	SystemUninstall() error
	SystemUpdate(ts InstanceTypes, opts SystemUpdateOptions) error
}

type SystemInstallOptions struct {
	Repository *string `flag:"repository" desc:"container image repository uri"`
	Subnets    *string `flag:"subnets" desc:"comma-separated private subnet ids"`
	Vpc        *string `flag:"vpc" desc:"vpc id"`
}

type SystemUpdateOptions struct {
	Repository *string `flag:"repository" desc:"container image repository uri"`
	Subnets    *string `flag:"subnets" desc:"comma-separated private subnet ids"`
	Vpc        *string `flag:"vpc" desc:"vpc id"`
}
