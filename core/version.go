package core

type VersionInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
}

var Version VersionInfo = VersionInfo{Version: "dev"}

func SetVersion(version, revision string) {
	Version = VersionInfo{
		Version:  version,
		Revision: revision,
	}
}
