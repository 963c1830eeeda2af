package main

import (
	"flag"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config to read flags and configure file for the pipeline command.
type cmdConfig struct {
	// Flags.
	workspace *string // workspace.
	config    *string // configure file name.
	ncpu      *int    // number of CPUs for using.

	// Input lists.
	dataFileList  string // file listing fasta data files.
	locusNameList string // file listing locus names.

	// Output.
	outDir string // locus alignment folder.

	// TranslatorX settings.
	transXCode  int    // genetic code for translation.
	gblocksOpts string // options passed through to Gblocks.

	// Codon cleaning.
	cleanCode int // genetic code for stop codon detection.
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.workspace = fs.String("w", "", "workspace")
	cmd.config = fs.String("c", "config", "configure file name")
	cmd.ncpu = fs.Int("ncpu", runtime.NumCPU(), "number of CPUs for using")
	return fs
}

// Parse configs.
func (cmd *cmdConfig) ParseConfig() {
	// Register viper for configurations.
	viper.SetConfigName(*cmd.config)
	viper.AddConfigPath(*cmd.workspace)
	if err := viper.ReadInConfig(); err != nil {
		ERROR.Fatalln(err)
	}

	// Read settings.
	cmd.dataFileList = filepath.Join(*cmd.workspace, viper.GetString("data.files"))
	cmd.locusNameList = filepath.Join(*cmd.workspace, viper.GetString("data.loci"))
	cmd.outDir = viper.GetString("out.dir")
	if cmd.outDir == "" {
		cmd.outDir = "locus_alignments"
	}
	cmd.outDir = filepath.Join(*cmd.workspace, cmd.outDir)
	cmd.transXCode = viper.GetInt("translatorx.code")
	if cmd.transXCode == 0 {
		cmd.transXCode = 1
	}
	cmd.gblocksOpts = viper.GetString("translatorx.gblocks")
	if cmd.gblocksOpts == "" {
		cmd.gblocksOpts = "-b5=n"
	}
	cmd.cleanCode = viper.GetInt("clean.code")
	if cmd.cleanCode == 0 {
		cmd.cleanCode = cmd.transXCode
	}

	runtime.GOMAXPROCS(*cmd.ncpu)
	registerLogger()
}
