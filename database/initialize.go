package database

import (
	"errors"

	"wallof.love/configs/configslog"
	"wallof.love/database/migrations"
	"wallof.love/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options veritabanı başlatma adımlarını seçer.
type Options struct {
	Migrate bool
	Seed    bool
	Demo    seeders.DemoUser
}

// ErrNothingToDo ne migrate ne seed istendiğinde döner.
var ErrNothingToDo = errors.New("migrate veya seed seçilmedi")

// Initialize migrasyonları ve seeder'ları tek bir transaction içinde çalıştırır.
// Herhangi bir adım hata verirse tüm işlem geri alınır.
func Initialize(db *gorm.DB, opts Options) error {
	if !opts.Migrate && !opts.Seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return ErrNothingToDo
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	err := db.Transaction(func(tx *gorm.DB) error {
		if opts.Migrate {
			configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrasyonlar tamamlandı.")
		} else {
			configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
		}

		if opts.Seed {
			configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
			if err := CheckAndRunSeeders(tx, opts.Demo); err != nil {
				configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeder'lar tamamlandı.")
		} else {
			configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
		}
		return nil
	})
	if err != nil {
		configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alındı.", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

type migrationStep struct {
	name string
	run  func(*gorm.DB) error
}

// migrationSteps foreign key bağımlılıklarına göre sıralıdır.
var migrationSteps = []migrationStep{
	{"User", migrations.MigrateUsersTable},
	{"Type", migrations.MigrateTypesTable},
	{"Link", migrations.MigrateLinksTable},
	{"Form", migrations.MigrateFormsTables},
	{"Testimonial", migrations.MigrateTestimonialsTable},
	{"AccountSettings", migrations.MigrateAccountSettingsTable},
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	for _, step := range migrationSteps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon adımı başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, demo seeders.DemoUser) error {
	configslog.SLog.Info(" -> Type seeder çalıştırılıyor...")
	if err := seeders.SeedTypes(db); err != nil {
		configslog.Log.Error("Types tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Type seeder tamamlandı.")

	if err := seeders.SeedDemoUser(db, demo); err != nil {
		configslog.Log.Error("Demo kullanıcı seed edilemedi", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
