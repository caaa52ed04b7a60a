package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/catpet/pkg/app"
	"github.com/decker502/catpet/pkg/config"
	"github.com/decker502/catpet/pkg/game"
	"github.com/decker502/catpet/pkg/term"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// AppName gdata 存储使用的应用名
const AppName = "catpet"

// Version 版本号
const Version = "v0.1.0"

var (
	configPath string
	verbose    bool
	logFile    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catpet",
		Short:         "catpet - 一只可以抚摸和喂养的桌面宠物猫",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// 不带子命令时打开窗口
		RunE: runWindow,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(io.Discard)
				log.SetFlags(0)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "宠物配置文件路径（YAML，缺省使用内置配置）")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "输出详细日志")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "在终端中运行（鼠标抚摸和拖拽）",
		Args:  cobra.NoArgs,
		RunE:  runTerm,
	}
	termCmd.Flags().StringVar(&logFile, "log-file", "catpet.log", "--verbose 时的日志文件（终端模式下日志不能写到屏幕）")
	termCmd.Flags().Int("fps", 0, "刷新率，0 表示使用保存的设置")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "window",
			Short: "在窗口中运行（默认）",
			Args:  cobra.NoArgs,
			RunE:  runWindow,
		},
		termCmd,
		&cobra.Command{
			Use:   "config",
			Short: "校验并打印生效的宠物配置",
			Args:  cobra.NoArgs,
			RunE:  runPrintConfig,
		},
	)

	return rootCmd
}

// loadPetConfig 读取 --config 指定的配置，未指定时使用内置配置
func loadPetConfig() (*config.PetConfig, error) {
	if configPath == "" {
		return config.DefaultPetConfig(), nil
	}
	cfg, err := config.LoadPetConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	petCfg, err := loadPetConfig()
	if err != nil {
		return err
	}

	a, err := app.NewApp(app.Config{
		Verbose:  verbose,
		Pet:      petCfg,
		Settings: game.OpenSettingsManager(AppName),
	})
	if err != nil {
		return err
	}
	return a.Run()
}

func runTerm(cmd *cobra.Command, args []string) error {
	petCfg, err := loadPetConfig()
	if err != nil {
		return err
	}

	closeLog, err := setupTermLog()
	if err != nil {
		return err
	}
	defer closeLog()

	settings := game.OpenSettingsManager(AppName)
	fps, _ := cmd.Flags().GetInt("fps")
	if fps > 0 {
		settings.SetTerminalFPS(fps)
	}

	world, err := game.NewPetWorld(petCfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.NewHost(screen, world, settings.GetSettings().TerminalFPS).Run(ctx); err != nil {
		return err
	}
	if err := settings.Save(); err != nil {
		log.Printf("[Main] 保存设置失败: %v", err)
	}
	return nil
}

// setupTermLog 终端模式下日志只能写文件
func setupTermLog() (func(), error) {
	if !verbose {
		return func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func runPrintConfig(cmd *cobra.Command, args []string) error {
	petCfg, err := loadPetConfig()
	if err != nil {
		return err
	}
	if err := petCfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(petCfg)
}
