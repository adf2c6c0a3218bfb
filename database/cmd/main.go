package main

import (
	"errors"
	"os"

	"wallof.love/configs"
	"wallof.love/configs/configsdatabase"
	"wallof.love/configs/configslog"
	"wallof.love/database"
	"wallof.love/database/seeders"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wallof-db",
		Short:         "wallof.love veritabanı araçları",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	var (
		skipMigrate bool
		seed        bool
		demo        seeders.DemoUser
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Tabloları oluşturur, istenirse seed verilerini yükler",
		RunE: func(cmd *cobra.Command, args []string) error {
			if demo.Email == "" {
				demo.Email = configs.GetEnv("SEED_DEMO_EMAIL", "")
			}
			if demo.Password == "" {
				demo.Password = configs.GetEnv("SEED_DEMO_PASSWORD", "")
			}

			configsdatabase.InitDB()
			defer configsdatabase.CloseDB()

			configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
			err := database.Initialize(configsdatabase.GetDB(), database.Options{
				Migrate: !skipMigrate,
				Seed:    seed,
				Demo:    demo,
			})
			if errors.Is(err, database.ErrNothingToDo) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Migrasyonları atla (yalnızca seed)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Hizmet türlerini (ve verilmişse demo hesabı) seed et")
	cmd.Flags().StringVar(&demo.Email, "demo-email", "", "Demo hesabın e-postası (SEED_DEMO_EMAIL)")
	cmd.Flags().StringVar(&demo.Password, "demo-password", "", "Demo hesabın parolası (SEED_DEMO_PASSWORD)")
	cmd.Flags().StringVar(&demo.Name, "demo-name", "Demo", "Demo hesabın adı")
	return cmd
}

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	if err := newRootCmd().Execute(); err != nil {
		configslog.SLog.Errorf("Veritabanı komutu başarısız: %v", err)
		configslog.SyncLogger()
		os.Exit(1)
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
