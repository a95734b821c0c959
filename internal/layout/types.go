package layout

// Manifest describes the files and directories expected on a host.
type Manifest struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Root        string     `yaml:"root,omitempty" json:"root,omitempty"`
	Platform    string     `yaml:"platform,omitempty" json:"platform,omitempty"`
	Files       []FileSpec `yaml:"files,omitempty" json:"files,omitempty"`
	Dirs        []DirSpec  `yaml:"dirs,omitempty" json:"dirs,omitempty"`
}

// FileSpec names one expected file as directory, base name and extension.
// A relative Dir is taken relative to the manifest root.
type FileSpec struct {
	Dir  string `yaml:"dir,omitempty" json:"dir,omitempty"`
	Base string `yaml:"base" json:"base"`
	Ext  string `yaml:"ext" json:"ext"`
}

// DirSpec names an expected directory and the minimum number of entries it
// must hold, not counting "." and "..".
type DirSpec struct {
	Path       string `yaml:"path" json:"path"`
	MinEntries int    `yaml:"min_entries,omitempty" json:"min_entries,omitempty"`
}
