package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

type Config struct {
	Build struct {
		Source  SourceOptions `yaml:"source"`
		Purge   bool          `yaml:"purge"`
		Output  string        `yaml:"output"`
		Project bool          `yaml:"project"`
	} `yaml:"build"`
	Map struct {
		Mode          string `yaml:"mode"`
		CRSGeographic string `yaml:"crs-geographic"`
		CRSProjected  string `yaml:"crs-projected"`
	} `yaml:"map"`
	Services struct {
		Address string `yaml:"address"`
	} `yaml:"services"`
}

type SourceOptions struct {
	OSM      string `yaml:"osm"`
	NodesCSV string `yaml:"nodes-csv"`
	EdgesCSV string `yaml:"edges-csv"`
	Map      string `yaml:"map"`
}
